package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/models"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show storage file path."`
	DumpEntry    *DebugDumpEntryCmd    `cmd:"" help:"Dump a weekly entry as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump team settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()

	// Output in machine-readable format
	output := map[string]string{
		"path": path,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpEntryCmd struct {
	Employee string `arg:"" help:"Employee name."`
	Week     string `arg:"" help:"Week start date (YYYY-MM-DD or 'thisweek')."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// Handle 'thisweek' as a special case
	week := cmd.Week
	if week == "thisweek" {
		week = currentWeekDate()
	}

	if !isValidDate(week) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'thisweek')", week)
	}

	entry, err := ctx.Store.GetEntry(cmd.Employee + "-" + week)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	// Shared secrets stay out of debug dumps. The employee slice is copied so
	// masking never touches the store's own settings.
	settings.AdminPassword = "********"
	settings.ITPassword = "********"
	masked := make([]models.Employee, len(settings.Employees))
	copy(masked, settings.Employees)
	for i := range masked {
		masked[i].Password = "********"
	}
	settings.Employees = masked

	jsonBytes, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

func currentWeekDate() string {
	return dates.CurrentWeekStart()
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}
