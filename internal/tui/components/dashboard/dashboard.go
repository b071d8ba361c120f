package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	sortedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	severeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	elevatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	moderateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("185"))
	lightStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// sortColumns is the cycle order for the sort key.
var sortColumns = []engine.SortKey{
	engine.SortByEmployee,
	engine.SortByOffice,
	engine.WeekSortKey(0),
	engine.WeekSortKey(1),
	engine.WeekSortKey(2),
	engine.WeekSortKey(3),
	engine.SortByAverageLoad,
	engine.SortByLoadDelta,
	engine.SortByCategory1,
	engine.SortByCategory2,
	engine.SortByProjects,
	engine.SortByAvailability,
}

type KeyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Sort     key.Binding
	Reverse  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevWeek: key.NewBinding(
			key.WithKeys("left", "h", "["),
			key.WithHelp("←/[", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("right", "l", "]"),
			key.WithHelp("→/]", "next week"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next sort column"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse sort"),
		),
	}
}

type Model struct {
	viewport   viewport.Model
	eng        *engine.Engine
	rows       []engine.Row
	weekLabels [constants.WeeksPerEntry]string
	sort       engine.SortState
	sortIndex  int
	activeWeek int
	keys       KeyMap
	width      int
	height     int
}

func New(eng *engine.Engine, width, height int) Model {
	return Model{
		viewport:   viewport.New(width, height),
		eng:        eng,
		weekLabels: dates.WeekLabels(dates.CurrentWeekStart()),
		sortIndex:  -1,
		keys:       DefaultKeyMap(),
	}
}

// SetRows replaces the dashboard dataset. Rows should already be the
// per-employee latest entries. Week labels always name the calendar weeks
// from today's Monday; a stale entry must not relabel the whole table.
func (m *Model) SetRows(rows []engine.Row) {
	m.rows = rows
	m.Render()
}

func (m Model) ActiveWeek() int {
	return m.activeWeek
}

func (m Model) Rows() []engine.Row {
	return m.rows
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevWeek):
			m.activeWeek = (m.activeWeek - 1 + constants.WeeksPerEntry) % constants.WeeksPerEntry
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.NextWeek):
			m.activeWeek = (m.activeWeek + 1) % constants.WeeksPerEntry
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.sortIndex = (m.sortIndex + 1) % len(sortColumns)
			m.sort.Request(sortColumns[m.sortIndex])
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Reverse):
			if m.sort.Active() {
				// Re-requesting the current column flips its direction.
				m.sort.Request(m.sort.Key)
				m.Render()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "\n  No entries yet.\n"
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func loadStyle(load int) lipgloss.Style {
	switch engine.LoadBucket(load) {
	case engine.BucketSevere:
		return severeStyle
	case engine.BucketElevated:
		return elevatedStyle
	case engine.BucketModerate:
		return moderateStyle
	default:
		return lightStyle
	}
}

func (m *Model) Render() {
	if len(m.rows) == 0 {
		m.viewport.SetContent("No entries loaded.")
		return
	}

	sorted := m.eng.SortRows(m.rows, m.sort, m.activeWeek)

	var b strings.Builder

	// Week tabs
	var weekTabs []string
	for i, label := range m.weekLabels {
		short := dates.ShortWeekLabel(label)
		if i == m.activeWeek {
			weekTabs = append(weekTabs, sortedStyle.Render("["+short+"]"))
		} else {
			weekTabs = append(weekTabs, rowStyle.Render(" "+short+" "))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, weekTabs...))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-18s %-10s %5s %5s %5s %5s  %4s %6s %3s %3s %3s  %-18s",
		"Employee", "Office", "Wk1", "Wk2", "Wk3", "Wk4", "Avg", "Delta", "C1", "C2", "Pr", "Availability")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", len(header)))
	b.WriteString("\n")

	for _, row := range sorted {
		loads := make([]string, constants.WeeksPerEntry)
		for i, load := range row.WeeklyLoads {
			loads[i] = loadStyle(load).Render(fmt.Sprintf("%4d%%", load))
		}
		line := fmt.Sprintf("%-18s %-10s %s %s %s %s  %3d%% %+5d%% %3d %3d %3d  %-18s",
			row.EmployeeName, row.Office,
			loads[0], loads[1], loads[2], loads[3],
			row.AverageLoad, row.LoadDelta,
			row.TotalCategory1, row.TotalCategory2, row.TotalProjects,
			row.Availability)
		b.WriteString(rowStyle.Render(line))
		b.WriteString("\n")
	}

	if m.sort.Active() {
		dir := "asc"
		if m.sort.Direction == engine.Descending {
			dir = "desc"
		}
		b.WriteString("\n")
		b.WriteString(sortedStyle.Render(fmt.Sprintf("sorted by %s (%s)", m.sort.Key, dir)))
	}

	m.viewport.SetContent(b.String())
}
