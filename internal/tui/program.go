package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/capworks/captrack/internal/models"
)

// AutoSaveMsg carries a debounced form snapshot into the update loop, where
// it is persisted on the program goroutine.
type AutoSaveMsg struct {
	Entry models.WeeklyEntry
}

var program *tea.Program

// WireAutosave registers the running program so the autosave timer can
// deliver snapshots into the update loop.
func WireAutosave(p *tea.Program) {
	program = p
}

// Send delivers a message to the running program, if one is wired.
func Send(msg tea.Msg) {
	if program != nil {
		program.Send(msg)
	}
}
