package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/engine"
)

type EntryListCmd struct {
	Employee string `help:"Only show entries for this employee."`
	Latest   bool   `help:"Show only each employee's most recent entry."`
}

func (c *EntryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	db, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	if len(db) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	entries := ctx.Engine.LatestEntries(db)
	if !c.Latest {
		entries = entries[:0]
		for _, e := range db {
			entries = append(entries, e)
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].EmployeeName != entries[j].EmployeeName {
				return entries[i].EmployeeName < entries[j].EmployeeName
			}
			return entries[i].WeekDate < entries[j].WeekDate
		})
	}

	fmt.Println("Entries:")
	for _, e := range entries {
		if c.Employee != "" && e.EmployeeName != c.Employee {
			continue
		}
		row := engine.BuildRow(e)
		fmt.Printf("  %s  week of %s  avg load %s  (%d matters)\n",
			e.EmployeeName, dates.FormatDisplayDate(e.WeekDate),
			formatLoad(row.AverageLoad), len(e.Projects))
	}

	return nil
}

type EntryShowCmd struct {
	Employee string `arg:"" help:"Employee name."`
	Week     string `arg:"" optional:"" help:"Week start date (YYYY-MM-DD). Defaults to the employee's latest entry."`
}

func (c *EntryShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	db, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	entry, found := engine.LatestEntryFor(c.Employee, db)
	if c.Week != "" {
		entry, found = db[c.Employee+"-"+c.Week], false
		if entry.EmployeeName != "" {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no entry found for %s", c.Employee)
	}

	labels := dates.WeekLabels(entry.WeekDate)

	fmt.Printf("%s — week of %s\n", entry.EmployeeName, dates.FormatDisplayDate(entry.WeekDate))
	fmt.Printf("Office: %s   Mentor: %s   Languages: %s\n",
		entry.Office, entry.Mentor, strings.Join(entry.Languages, ", "))
	fmt.Printf("Availability: %s\n\n", entry.Availability)

	for i, label := range labels {
		hours := engine.WeekHours(entry, i)
		load := engine.WeekLoadPercent(entry, i)
		fmt.Printf("  %-28s %5.1fh  (%s", label, hours, formatLoad(load))
		if days := entry.AnnualLeave.DayCount(i); days > 0 {
			fmt.Printf(", %s leave", dates.FormatLeaveDaySpans(entry.AnnualLeave[i]))
		}
		fmt.Println(")")
		if i < len(entry.CapacityComments) && entry.CapacityComments[i] != "" {
			fmt.Printf("      %s\n", entry.CapacityComments[i])
		}
	}

	if len(entry.Projects) > 0 {
		fmt.Println("\nMatters:")
		for _, p := range entry.Projects {
			fmt.Printf("  %-24s %-10s %-12s %v\n", p.Name, p.Type(), p.Owner, p.Capacities)
		}
	}

	if spans := dates.AllLeaveDates(entry.WeekDate, entry.AnnualLeave); spans != "-" {
		fmt.Printf("\nAnnual leave: %s\n", spans)
	}

	return nil
}
