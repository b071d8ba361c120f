package cli

import (
	"fmt"

	"github.com/capworks/captrack/internal/dates"
)

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
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

	latest := ctx.Engine.LatestEntries(db)
	rows := ctx.Engine.BuildRows(latest)
	summary := ctx.Engine.WeeklySummary(rows)
	labels := dates.WeekLabels(dates.CurrentWeekStart())

	fmt.Printf("Weekly summary (%d employees):\n\n", len(rows))
	for i, wk := range summary {
		fmt.Printf("%s\n", labels[i])
		fmt.Printf("  Average load:         %s\n", formatLoad(wk.AverageLoad))
		fmt.Printf("  With capacity:        %d\n", wk.WithCapacity)
		fmt.Printf("  At or over capacity:  %d\n", wk.AtOrOverCapacity)
		fmt.Printf("  Average leave days:   %.1f\n", wk.AverageLeaveDays)
		fmt.Println()
	}

	return nil
}
