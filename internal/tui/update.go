package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/capworks/captrack/internal/auth"
	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/tui/components/matters"
	"github.com/capworks/captrack/internal/units"
)

func (m Model) isFormState() bool {
	switch m.state {
	case StateLogin, StateProfile, StateMatterForm, StateComments, StateSettingsForm:
		return true
	}
	return false
}

// quit stops the autosave timer and flushes a valid employee entry before
// the program exits.
func (m Model) quit() (Model, tea.Cmd) {
	m.saver.Stop()
	if m.role == auth.RoleEmployee && m.entry.EmployeeName != "" {
		if !m.validator.ValidateEntry(m.entry).HasIssues() {
			_ = m.store.UpsertEntry(m.entry)
		}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeComponents()
		return m, nil

	case AutoSaveMsg:
		if err := m.store.UpsertEntry(msg.Entry); err != nil {
			m.statusMsg = fmt.Sprintf("Autosave failed: %v", err)
		}
		return m, nil

	case matters.AddMatterMsg:
		m.buildMatterForm(-1)
		m.state = StateMatterForm
		return m, m.form.Init()

	case matters.EditMatterMsg:
		m.buildMatterForm(msg.Index)
		m.state = StateMatterForm
		return m, m.form.Init()

	case matters.DeleteMatterMsg:
		m.deleteIndex = msg.Index
		m.previousState = StateForm
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	if m.isFormState() {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m.routeToComponent(msg)
}

// updateForm drives the active huh form and folds the result back in on
// completion.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeForm()
	case huh.StateAborted:
		return m.abortForm()
	}
	return m, cmd
}

func (m Model) completeForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLogin:
		if err := m.authenticate(); err != nil {
			m.loginError = err.Error()
			m.buildLoginForm()
			return m, m.form.Init()
		}
		m.loginError = ""
		m.role = m.loginForm.Role
		switch m.role {
		case auth.RoleEmployee:
			m.startEmployeeSession(strings.TrimSpace(m.loginForm.Name))
		case auth.RoleIT:
			m.state = StateSettings
			m.section = sectionOffices
			m.sectionItem = 0
		default:
			m.startManagerSession()
		}
		return m, nil

	case StateProfile:
		m.entry.Office = m.profileForm.Office
		m.entry.Mentor = m.profileForm.Mentor
		m.entry.Languages = m.profileForm.Languages
		m.entry.Interests = units.LimitWordCount(m.profileForm.Interests, constants.CommentWordLimit)
		m.entry.Availability = m.profileForm.Availability
		m.markDirty()
		m.state = StateForm
		return m, nil

	case StateMatterForm:
		m.applyMatterForm()
		m.markDirty()
		m.state = StateForm
		return m, nil

	case StateComments:
		comments := make([]string, constants.WeeksPerEntry)
		for i, c := range m.commentsForm.Comments {
			comments[i] = units.LimitWordCount(c, constants.CommentWordLimit)
		}
		m.entry.CapacityComments = comments
		m.markDirty()
		m.state = StateForm
		return m, nil

	case StateSettingsForm:
		m.applySettingsForm()
		m.state = StateSettings
		return m, nil
	}
	return m, nil
}

func (m Model) abortForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLogin:
		return m.quit()
	case StateSettingsForm:
		m.state = StateSettings
	default:
		m.editingIndex = -1
		m.state = StateForm
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal states swallow everything.
	switch m.state {
	case StateConfirmDelete:
		switch msg.String() {
		case "y", "enter":
			m.performDelete()
		}
		m.state = m.previousState
		return m, nil
	case StateIssues, StateSaved:
		m.state = m.previousState
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case StateForm:
		return m.handleFormKey(msg)
	case StateLeave:
		return m.handleLeaveKey(msg)
	case StateDashboard, StateInsights, StateSummary:
		return m.handleManagerKey(msg)
	case StateSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Profile):
		m.buildProfileForm()
		m.state = StateProfile
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Leave):
		m.leaveWeek = 0
		m.leaveDay = 0
		m.state = StateLeave
		return m, nil

	case key.Matches(msg, m.keys.Comments):
		m.buildCommentsForm()
		m.state = StateComments
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Save):
		m.previousState = StateForm
		if m.saveEntry() {
			m.state = StateSaved
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.matterList, cmd = m.matterList.Update(msg)
	return m, cmd
}

func (m Model) handleLeaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.entry.AnnualLeave[m.leaveWeek][m.leaveDay] = !m.entry.AnnualLeave[m.leaveWeek][m.leaveDay]
		m.markDirty()
	case key.Matches(msg, m.keys.Up):
		if m.leaveWeek > 0 {
			m.leaveWeek--
		}
	case key.Matches(msg, m.keys.Down):
		if m.leaveWeek < constants.WeeksPerEntry-1 {
			m.leaveWeek++
		}
	case key.Matches(msg, m.keys.Left):
		if m.leaveDay > 0 {
			m.leaveDay--
		}
	case key.Matches(msg, m.keys.Right):
		if m.leaveDay < constants.DaysPerWeek-1 {
			m.leaveDay++
		}
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.state = StateForm
	}
	return m, nil
}

func (m Model) handleManagerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.state = nextManagerState(m.state)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = prevManagerState(m.state)
		return m, nil
	}

	// Week cycling and sorting live in the dashboard component; insights and
	// summary share its active week.
	var cmd tea.Cmd
	m.dash, cmd = m.dash.Update(msg)
	return m, cmd
}

func nextManagerState(s SessionState) SessionState {
	switch s {
	case StateDashboard:
		return StateInsights
	case StateInsights:
		return StateSummary
	default:
		return StateDashboard
	}
}

func prevManagerState(s SessionState) SessionState {
	switch s {
	case StateDashboard:
		return StateSummary
	case StateSummary:
		return StateInsights
	default:
		return StateDashboard
	}
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.sectionItems(m.section)

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.section = (m.section + 1) % sectionCount
		m.sectionItem = 0
	case key.Matches(msg, m.keys.ShiftTab):
		m.section = (m.section - 1 + sectionCount) % sectionCount
		m.sectionItem = 0
	case key.Matches(msg, m.keys.Up):
		if m.sectionItem > 0 {
			m.sectionItem--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sectionItem < len(items)-1 {
			m.sectionItem++
		}
	case key.Matches(msg, m.keys.Add):
		m.buildSettingsForm(m.section)
		m.state = StateSettingsForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if len(items) > 0 {
			m.deleteIndex = m.sectionItem
			m.previousState = StateSettings
			m.state = StateConfirmDelete
		}
	}
	return m, nil
}

func (m Model) routeToComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateForm:
		m.matterList, cmd = m.matterList.Update(msg)
	case StateDashboard, StateInsights, StateSummary:
		m.dash, cmd = m.dash.Update(msg)
	}
	return m, cmd
}

// sectionItems returns the display names for the given settings section.
func (m Model) sectionItems(section int) []string {
	switch section {
	case sectionOffices:
		return m.settings.Offices
	case sectionMentors:
		return m.settings.Mentors
	case sectionLanguages:
		return m.settings.Languages
	default:
		names := make([]string, len(m.settings.Employees))
		for i, emp := range m.settings.Employees {
			names[i] = emp.Name
		}
		return names
	}
}

// applySettingsForm adds the submitted value to the active section, skipping
// blanks and duplicates, and persists the settings.
func (m *Model) applySettingsForm() {
	value := strings.TrimSpace(m.settingsForm.Value)
	if value == "" {
		return
	}
	for _, existing := range m.sectionItems(m.section) {
		if existing == value {
			m.statusMsg = fmt.Sprintf("%q already exists", value)
			return
		}
	}

	switch m.section {
	case sectionOffices:
		m.settings.Offices = append(m.settings.Offices, value)
	case sectionMentors:
		m.settings.Mentors = append(m.settings.Mentors, value)
	case sectionLanguages:
		m.settings.Languages = append(m.settings.Languages, value)
	case sectionEmployees:
		if m.settingsForm.Password == "" {
			m.statusMsg = "Employee accounts need a password"
			return
		}
		m.settings.Employees = append(m.settings.Employees, models.Employee{
			Name:     value,
			Password: m.settingsForm.Password,
		})
	}
	m.persistSettings()
}

// performDelete resolves the pending confirm modal: either a matter from the
// open entry or an item from the active settings section.
func (m *Model) performDelete() {
	if m.previousState == StateForm {
		if m.deleteIndex >= 0 && m.deleteIndex < len(m.entry.Projects) {
			m.entry.Projects = append(m.entry.Projects[:m.deleteIndex], m.entry.Projects[m.deleteIndex+1:]...)
			m.matterList.SetMatters(m.entry.Projects)
			m.markDirty()
		}
		return
	}

	items := m.sectionItems(m.section)
	if m.deleteIndex < 0 || m.deleteIndex >= len(items) {
		return
	}
	switch m.section {
	case sectionOffices:
		m.settings.Offices = append(m.settings.Offices[:m.deleteIndex], m.settings.Offices[m.deleteIndex+1:]...)
	case sectionMentors:
		m.settings.Mentors = append(m.settings.Mentors[:m.deleteIndex], m.settings.Mentors[m.deleteIndex+1:]...)
	case sectionLanguages:
		m.settings.Languages = append(m.settings.Languages[:m.deleteIndex], m.settings.Languages[m.deleteIndex+1:]...)
	case sectionEmployees:
		m.settings.Employees = append(m.settings.Employees[:m.deleteIndex], m.settings.Employees[m.deleteIndex+1:]...)
	}
	if m.sectionItem >= len(items)-1 && m.sectionItem > 0 {
		m.sectionItem--
	}
	m.persistSettings()
}

func (m *Model) persistSettings() {
	if err := m.store.SaveSettings(m.settings); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to save settings: %v", err)
	}
}
