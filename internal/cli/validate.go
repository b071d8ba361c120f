package cli

import (
	"fmt"
	"sort"

	"github.com/capworks/captrack/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	db, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	keys := make([]string, 0, len(db))
	for key := range db {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	validator := validation.New()
	clean := true
	for _, key := range keys {
		entry := db[key]
		result := validator.ValidateEntry(entry)
		if !result.HasIssues() {
			continue
		}
		clean = false
		fmt.Printf("%s (week of %s):\n", entry.EmployeeName, entry.WeekDate)
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.Message)
		}
	}

	if clean {
		fmt.Println("No issues detected.")
	}
	return nil
}
