package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/capworks/captrack/internal/cli"
	"github.com/capworks/captrack/internal/engine"
	"github.com/capworks/captrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for JSON)." type:"path" default:"~/.config/captrack/captrack.db"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize captrack storage with the seed dataset."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Print the team capacity dashboard."`
	Insights  cli.InsightsCmd  `cmd:"" help:"Print per-week rankings and capacity buckets."`
	Summary   cli.SummaryCmd   `cmd:"" help:"Print the four-week team summary."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Check all entries for missing required fields."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run storage and environment diagnostics."`
	Entry     struct {
		List cli.EntryListCmd `cmd:"" help:"List weekly entries."`
		Show cli.EntryShowCmd `cmd:"" help:"Show one employee's weekly entry."`
	} `cmd:"" help:"Inspect weekly entries."`
	Settings struct {
		Show        cli.SettingsShowCmd `cmd:"" help:"Show team settings."`
		SetPassword cli.SetPasswordCmd  `cmd:"" help:"Change the admin or IT password."`
		Office      struct {
			Add    cli.OfficeAddCmd    `cmd:"" help:"Add an office."`
			Remove cli.OfficeRemoveCmd `cmd:"" help:"Remove an office."`
		} `cmd:"" help:"Manage offices."`
		Mentor struct {
			Add    cli.MentorAddCmd    `cmd:"" help:"Add a mentor."`
			Remove cli.MentorRemoveCmd `cmd:"" help:"Remove a mentor."`
		} `cmd:"" help:"Manage mentors."`
		Language struct {
			Add    cli.LanguageAddCmd    `cmd:"" help:"Add a working language."`
			Remove cli.LanguageRemoveCmd `cmd:"" help:"Remove a working language."`
		} `cmd:"" help:"Manage working languages."`
		Employee struct {
			Add    cli.EmployeeAddCmd    `cmd:"" help:"Add an employee."`
			Remove cli.EmployeeRemoveCmd `cmd:"" help:"Remove an employee."`
		} `cmd:"" help:"Manage employees."`
	} `cmd:"" help:"Manage team settings (IT password required for changes)."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the storage file from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Debug cli.DebugCmd `cmd:"" help:"Debug utilities."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("captrack"),
		kong.Description("Team capacity planning and reporting"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Store:  storage.ForPath(CLI.Config),
		Engine: engine.New(),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
