package cli

import (
	"fmt"
	"strings"

	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/engine"
)

type DashboardCmd struct {
	Week int    `help:"Active horizon week (1-4)." default:"1"`
	Sort string `help:"Sort column: employee, office, availability, average, delta, category1, category2, projects, week1..week4." default:""`
	Desc bool   `help:"Sort descending."`
}

func (c *DashboardCmd) Run(ctx *Context) error {
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

	if c.Week < 1 || c.Week > constants.WeeksPerEntry {
		return fmt.Errorf("week must be between 1 and %d", constants.WeeksPerEntry)
	}
	activeWeek := c.Week - 1

	latest := ctx.Engine.LatestEntries(db)
	rows := ctx.Engine.BuildRows(latest)

	state := engine.SortState{Key: engine.SortKey(c.Sort)}
	if c.Desc {
		state.Direction = engine.Descending
	}
	rows = ctx.Engine.SortRows(rows, state, activeWeek)

	// Labels name calendar weeks from today's Monday, not from whichever
	// entry happens to sort first.
	labels := dates.WeekLabels(dates.CurrentWeekStart())
	fmt.Printf("Team dashboard — active week: %s\n\n", dates.ShortWeekLabel(labels[activeWeek]))

	header := fmt.Sprintf("%-16s %-10s %6s %6s %6s %6s  %5s %6s  %-20s",
		"Employee", "Office", "Wk1", "Wk2", "Wk3", "Wk4", "Avg", "Delta", "Availability")
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))

	for _, row := range rows {
		fmt.Printf("%-16s %-10s %6s %6s %6s %6s  %5s %+5d%%  %-20s\n",
			row.EmployeeName, row.Office,
			formatLoad(row.WeeklyLoads[0]), formatLoad(row.WeeklyLoads[1]),
			formatLoad(row.WeeklyLoads[2]), formatLoad(row.WeeklyLoads[3]),
			formatLoad(row.AverageLoad), row.LoadDelta, row.Availability)
	}

	return nil
}
