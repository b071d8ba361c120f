package matters

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/units"
)

type AddMatterMsg struct{}

type EditMatterMsg struct {
	Index int
}

type DeleteMatterMsg struct {
	Index int
}

type Item struct {
	Index  int
	Matter models.Project
}

func (i Item) Title() string {
	name := i.Matter.Name
	if name == "" {
		name = "(Untitled)"
	}
	return name
}

func (i Item) Description() string {
	hours := make([]string, len(i.Matter.Capacities))
	for w, pct := range i.Matter.Capacities {
		hours[w] = units.FormatHoursInput(units.PercentToHours(pct))
	}
	return fmt.Sprintf("%s | %s | %s %s %s %s",
		i.Matter.Type(), i.Matter.Owner, hours[0], hours[1], hours[2], hours[3])
}

func (i Item) FilterValue() string { return i.Matter.Name }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(projects []models.Project, width, height int) Model {
	l := list.New(items(projects), list.NewDefaultDelegate(), width, height)
	l.Title = "Matters"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func items(projects []models.Project) []list.Item {
	out := make([]list.Item, len(projects))
	for i, p := range projects {
		out[i] = Item{Index: i, Matter: p}
	}
	return out
}

func (m *Model) SetMatters(projects []models.Project) {
	m.list.SetItems(items(projects))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMatterMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditMatterMsg{Index: i.Index} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMatterMsg{Index: i.Index} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No matters yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
