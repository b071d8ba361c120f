package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/engine"
	"github.com/capworks/captrack/internal/units"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateLogin:
		content = m.viewLogin()
	case StateForm:
		content = m.viewForm()
	case StateProfile, StateMatterForm, StateComments, StateSettingsForm:
		content = m.form.View()
	case StateLeave:
		content = m.viewLeave()
	case StateDashboard:
		content = docStyle.Render(m.dash.View())
	case StateInsights:
		content = docStyle.Render(m.viewInsights())
	case StateSummary:
		content = docStyle.Render(m.viewSummary())
	case StateSettings:
		content = m.viewSettings()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateIssues:
		content = m.viewIssues()
	case StateSaved:
		content = m.viewSaved()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, warnStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var titles []string
	var active int

	switch m.state {
	case StateDashboard, StateInsights, StateSummary:
		titles = []string{"Dashboard", "Insights", "Summary"}
		switch m.state {
		case StateInsights:
			active = 1
		case StateSummary:
			active = 2
		}
	case StateSettings, StateSettingsForm:
		titles = []string{"Offices", "Mentors", "Languages", "Employees"}
		active = m.section
	case StateLogin:
		return titleStyle.Render(" captrack ")
	default:
		name := m.entry.EmployeeName
		if name == "" {
			name = "Capacity Form"
		}
		return titleStyle.Render(fmt.Sprintf(" %s — week of %s ", name, dates.FormatDisplayDate(m.entry.WeekDate)))
	}

	var tabs []string
	for i, title := range titles {
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLogin() string {
	parts := []string{m.form.View()}
	if m.loginError != "" {
		parts = append(parts, "", dangerStyle.Render(m.loginError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// viewForm is the employee landing screen: per-week totals above the
// matters list.
func (m Model) viewForm() string {
	labels := dates.WeekLabels(m.entry.WeekDate)

	var b strings.Builder
	for w := 0; w < constants.WeeksPerEntry; w++ {
		load := engine.WeekLoadPercent(m.entry, w)
		hours := engine.WeekHours(m.entry, w)
		line := fmt.Sprintf("%-16s %s (%d%%)",
			dates.ShortWeekLabel(labels[w]), units.FormatHoursInput(hours), load)
		b.WriteString(loadLineStyle(load).Render(line))
		if leave := dates.FormatLeaveDaySpans(m.entry.AnnualLeave[w]); leave != "-" {
			b.WriteString(subtleStyle.Render("  leave: " + leave))
		}
		b.WriteString("\n")
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		m.matterList.View(),
	))
}

func loadLineStyle(load int) lipgloss.Style {
	switch engine.LoadBucket(load) {
	case engine.BucketSevere:
		return severeLoadStyle
	case engine.BucketElevated:
		return elevatedLoadStyle
	case engine.BucketModerate:
		return moderateLoadStyle
	default:
		return lightLoadStyle
	}
}

func (m Model) viewLeave() string {
	labels := dates.WeekLabels(m.entry.WeekDate)
	days := [constants.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Annual Leave"))
	b.WriteString("\n\n")
	for w := 0; w < constants.WeeksPerEntry; w++ {
		b.WriteString(fmt.Sprintf("%-16s", dates.ShortWeekLabel(labels[w])))
		for d := 0; d < constants.DaysPerWeek; d++ {
			cell := "[ ]"
			if m.entry.AnnualLeave[w][d] {
				cell = "[x]"
			}
			label := fmt.Sprintf(" %s %s ", days[d], cell)
			if w == m.leaveWeek && d == m.leaveDay {
				b.WriteString(activeTabStyle.Render(label))
			} else {
				b.WriteString(label)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("space toggles a day, esc returns to the form"))
	return docStyle.Render(b.String())
}

func (m Model) viewInsights() string {
	week := m.dash.ActiveWeek()
	ins := m.eng.Insights(m.dash.Rows(), week)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Week %d insights", week+1)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Average load: %d%%\n", ins.AverageLoad))
	b.WriteString(fmt.Sprintf("Looking for work: %d   At capacity: %d   Over capacity: %d\n\n",
		ins.LookingForWork, ins.AtCapacity, ins.OverCapacity))

	b.WriteString(titleStyle.Render("Most loaded"))
	b.WriteString("\n")
	for _, p := range ins.MostLoaded {
		b.WriteString(fmt.Sprintf("  %-20s %d%%\n", p.Name, p.Load))
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Most available"))
	b.WriteString("\n")
	for _, p := range ins.LeastLoaded {
		b.WriteString(fmt.Sprintf("  %-20s %d%%\n", p.Name, p.Load))
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Busiest matters"))
	b.WriteString("\n")
	for _, d := range ins.TopMatters {
		b.WriteString(fmt.Sprintf("  %-24s %d%%\n", d.Name, d.Total))
	}
	return b.String()
}

func (m Model) viewSummary() string {
	rows := m.dash.Rows()
	summaries := m.eng.WeeklySummary(rows)
	labels := dates.WeekLabels(dates.CurrentWeekStart())

	var b strings.Builder
	b.WriteString(titleStyle.Render("4-week summary"))
	b.WriteString("\n\n")
	header := fmt.Sprintf("%-16s %8s %14s %14s %12s", "Week", "Avg", "With capacity", "At/over", "Avg leave")
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	for w, s := range summaries {
		b.WriteString(fmt.Sprintf("%-16s %7d%% %14d %14d %12.1f\n",
			dates.ShortWeekLabel(labels[w]), s.AverageLoad, s.WithCapacity, s.AtOrOverCapacity, s.AverageLeaveDays))
	}
	return b.String()
}

func (m Model) viewSettings() string {
	items := m.sectionItems(m.section)

	var b strings.Builder
	for i, item := range items {
		cursor := "  "
		if i == m.sectionItem {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	if len(items) == 0 {
		b.WriteString(subtleStyle.Render("(empty)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("a add, d delete, tab next section"))
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	subject := "this matter"
	if m.previousState == StateSettings {
		items := m.sectionItems(m.section)
		if m.deleteIndex >= 0 && m.deleteIndex < len(items) {
			subject = fmt.Sprintf("%q", items[m.deleteIndex])
		}
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete %s?", subject)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewIssues() string {
	lines := []string{dangerStyle.Render("The entry cannot be saved yet:"), ""}
	for _, issue := range m.issues {
		lines = append(lines, warnStyle.Render("• "+issue.Message))
	}
	lines = append(lines, "", subtleStyle.Render("press any key to continue"))
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

func (m Model) viewSaved() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			okStyle.Render("Entry saved."),
			"",
			subtleStyle.Render("press any key to continue"),
		),
	)
}
