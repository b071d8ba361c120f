package cli

import (
	"fmt"

	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/dates"
)

type InsightsCmd struct {
	Week int `help:"Horizon week (1-4)." default:"1"`
}

func (c *InsightsCmd) Run(ctx *Context) error {
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
	week := c.Week - 1

	latest := ctx.Engine.LatestEntries(db)
	rows := ctx.Engine.BuildRows(latest)
	in := ctx.Engine.Insights(rows, week)

	labels := dates.WeekLabels(dates.CurrentWeekStart())
	fmt.Printf("Insights — %s\n\n", labels[week])

	fmt.Printf("Average load:      %s\n", formatLoad(in.AverageLoad))
	fmt.Printf("Looking for work:  %d\n", in.LookingForWork)
	fmt.Printf("At capacity:       %d\n", in.AtCapacity)
	fmt.Printf("Over capacity:     %d\n", in.OverCapacity)

	fmt.Println("\nBusiest:")
	for _, p := range in.MostLoaded {
		fmt.Printf("  %-20s %s\n", p.Name, formatLoad(p.Load))
	}
	fmt.Println("\nMost available:")
	for _, p := range in.LeastLoaded {
		fmt.Printf("  %-20s %s\n", p.Name, formatLoad(p.Load))
	}

	if len(in.TopMatters) > 0 {
		fmt.Println("\nTop matters by demand:")
		for _, m := range in.TopMatters {
			fmt.Printf("  %-24s %s\n", m.Name, formatLoad(m.Total))
		}
	}

	return nil
}
