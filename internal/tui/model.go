package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/capworks/captrack/internal/auth"
	"github.com/capworks/captrack/internal/autosave"
	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/engine"
	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/storage"
	"github.com/capworks/captrack/internal/tui/components/dashboard"
	"github.com/capworks/captrack/internal/tui/components/matters"
	"github.com/capworks/captrack/internal/units"
	"github.com/capworks/captrack/internal/validation"
)

type SessionState int

const (
	StateLogin SessionState = iota
	StateForm
	StateProfile
	StateMatterForm
	StateLeave
	StateComments
	StateDashboard
	StateInsights
	StateSummary
	StateSettings
	StateSettingsForm
	StateConfirmDelete
	StateIssues
	StateSaved
)

type LoginFormModel struct {
	Role     auth.Role
	Name     string
	Password string
}

type ProfileFormModel struct {
	Office       string
	Mentor       string
	Languages    []string
	Interests    string
	Availability models.Availability
}

// MatterFormModel holds one matter's fields as the form shows them:
// capacities are H:MM strings, converted on submit.
type MatterFormModel struct {
	Name     string
	Category models.MatterType
	Owner    string
	Tasks    string
	Hours    [constants.WeeksPerEntry]string
}

type CommentsFormModel struct {
	Comments [constants.WeeksPerEntry]string
}

type SettingsFormModel struct {
	Value    string
	Password string
}

// settings sections, cycled with tab inside the settings screen.
const (
	sectionOffices = iota
	sectionMentors
	sectionLanguages
	sectionEmployees
	sectionCount
)

type Model struct {
	store     storage.Provider
	eng       *engine.Engine
	validator *validation.Validator
	saver     *autosave.Saver

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	role       auth.Role
	settings   storage.Settings
	loginError string

	// employee session
	entry        models.WeeklyEntry
	matterList   matters.Model
	editingIndex int // matter index under edit, -1 for a new matter
	leaveWeek    int
	leaveDay     int
	deleteIndex  int
	issues       []validation.Issue
	statusMsg    string

	// manager session
	dash dashboard.Model

	// IT session
	section     int
	sectionItem int

	form         *huh.Form
	loginForm    *LoginFormModel
	profileForm  *ProfileFormModel
	matterForm   *MatterFormModel
	commentsForm *CommentsFormModel
	settingsForm *SettingsFormModel

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	settings, _ := store.GetSettings()

	m := Model{
		store:        store,
		eng:          eng,
		validator:    validation.New(),
		state:        StateLogin,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		settings:     settings,
		matterList:   matters.New(nil, 0, 0),
		dash:         dashboard.New(eng, 0, 0),
		editingIndex: -1,
	}
	m.saver = autosave.New(constants.AutosaveDelay, func(e models.WeeklyEntry) {
		Send(AutoSaveMsg{Entry: e})
	})

	m.buildLoginForm()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateForm:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Profile, m.keys.Leave, m.keys.Comments, m.keys.Save)
	case StateDashboard:
		keys = append(keys, m.keys.Tab, m.keys.Left, m.keys.Right, m.keys.Sort, m.keys.Reverse)
	case StateInsights, StateSummary:
		keys = append(keys, m.keys.Tab, m.keys.Left, m.keys.Right)
	case StateLeave:
		keys = append(keys, m.keys.Toggle, m.keys.Back)
	case StateSettings:
		keys = append(keys, m.keys.Tab, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// buildLoginForm creates the role and credential prompt.
func (m *Model) buildLoginForm() {
	m.loginForm = &LoginFormModel{}

	employeeNames := make([]string, len(m.settings.Employees))
	for i, emp := range m.settings.Employees {
		employeeNames[i] = emp.Name
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[auth.Role]().
				Title("Sign in as").
				Options(
					huh.NewOption("Employee", auth.RoleEmployee),
					huh.NewOption("Manager", auth.RoleManager),
					huh.NewOption("Team Dashboard", auth.RoleDashboard),
					huh.NewOption("IT Settings", auth.RoleIT),
				).
				Value(&m.loginForm.Role),
			huh.NewSelect[string]().
				Title("Name").
				OptionsFunc(func() []huh.Option[string] {
					if m.loginForm.Role != auth.RoleEmployee {
						return []huh.Option[string]{huh.NewOption("-", "-")}
					}
					return huh.NewOptions(employeeNames...)
				}, &m.loginForm.Role).
				Value(&m.loginForm.Name),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.loginForm.Password),
		),
	)
}

// authenticate checks the submitted login form and returns the error message
// for the attempted role.
func (m *Model) authenticate() error {
	switch m.loginForm.Role {
	case auth.RoleEmployee:
		return auth.CheckEmployee(m.settings.Employees, m.loginForm.Name, m.loginForm.Password)
	case auth.RoleManager:
		return auth.CheckManager(m.settings.AdminPassword, m.loginForm.Password)
	case auth.RoleDashboard:
		return auth.CheckDashboard(m.settings.AdminPassword, m.loginForm.Password)
	default:
		return auth.CheckIT(m.settings.ITPassword, m.loginForm.Password)
	}
}

// startEmployeeSession prefills the weekly form from the employee's most
// recent entry. Profile and matters carry over; the leave grid and comments
// start fresh unless an entry for the current week already exists.
func (m *Model) startEmployeeSession(name string) {
	week := dates.CurrentWeekStart()

	entry := models.WeeklyEntry{
		WeekDate:     week,
		EmployeeName: name,
	}
	db, err := m.store.GetAllEntries()
	if err == nil {
		if latest, found := engine.LatestEntryFor(name, db); found {
			if latest.WeekDate == week {
				entry = latest
			} else {
				entry.Office = latest.Office
				entry.Mentor = latest.Mentor
				entry.Languages = latest.Languages
				entry.Interests = latest.Interests
				entry.Availability = latest.Availability
				entry.Projects = latest.Projects
			}
		}
	}

	m.entry = entry
	m.matterList.SetMatters(m.entry.Projects)
	m.state = StateForm
	m.resizeComponents()
}

// startManagerSession builds the dashboard dataset.
func (m *Model) startManagerSession() {
	db, err := m.store.GetAllEntries()
	if err != nil {
		m.statusMsg = fmt.Sprintf("Failed to load entries: %v", err)
		db = map[string]models.WeeklyEntry{}
	}
	rows := m.eng.BuildRows(m.eng.LatestEntries(db))
	m.dash.SetRows(rows)
	m.state = StateDashboard
	m.resizeComponents()
}

func (m *Model) buildProfileForm() {
	m.profileForm = &ProfileFormModel{
		Office:       m.entry.Office,
		Mentor:       m.entry.Mentor,
		Languages:    m.entry.Languages,
		Interests:    m.entry.Interests,
		Availability: m.entry.Availability,
	}
	if m.profileForm.Availability == "" {
		m.profileForm.Availability = models.AvailabilityWithCapacity
	}

	availabilityOptions := make([]huh.Option[models.Availability], 0)
	for _, a := range models.Availabilities() {
		availabilityOptions = append(availabilityOptions, huh.NewOption(string(a), a))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Office").
				Options(huh.NewOptions(m.settings.Offices...)...).
				Value(&m.profileForm.Office),
			huh.NewSelect[string]().
				Title("Mentor").
				Options(huh.NewOptions(m.settings.Mentors...)...).
				Value(&m.profileForm.Mentor),
			huh.NewMultiSelect[string]().
				Title("Working Language(s)").
				Options(huh.NewOptions(m.settings.Languages...)...).
				Value(&m.profileForm.Languages),
			huh.NewText().
				Title("Interests / development goals").
				Value(&m.profileForm.Interests),
			huh.NewSelect[models.Availability]().
				Title("Availability (next 2 weeks)").
				Options(availabilityOptions...).
				Value(&m.profileForm.Availability),
		),
	)
}

func (m *Model) buildMatterForm(index int) {
	m.editingIndex = index
	m.matterForm = &MatterFormModel{Category: models.MatterProject}
	if index >= 0 && index < len(m.entry.Projects) {
		p := m.entry.Projects[index]
		m.matterForm.Name = p.Name
		m.matterForm.Category = p.Type()
		m.matterForm.Owner = p.Owner
		m.matterForm.Tasks = p.Tasks
		for w, pct := range p.Capacities {
			m.matterForm.Hours[w] = units.FormatHoursInput(units.PercentToHours(pct))
		}
	}

	categoryOptions := make([]huh.Option[models.MatterType], 0)
	for _, t := range models.MatterTypes() {
		categoryOptions = append(categoryOptions, huh.NewOption(string(t), t))
	}

	labels := dates.WeekLabels(m.entry.WeekDate)
	fields := []huh.Field{
		huh.NewInput().
			Title("Matter Name").
			Value(&m.matterForm.Name),
		huh.NewSelect[models.MatterType]().
			Title("Category").
			Options(categoryOptions...).
			Value(&m.matterForm.Category),
		huh.NewSelect[string]().
			Title("Supervisor").
			Options(huh.NewOptions(m.settings.Mentors...)...).
			Value(&m.matterForm.Owner),
		huh.NewText().
			Title("Tasks").
			Value(&m.matterForm.Tasks),
	}
	for w := 0; w < constants.WeeksPerEntry; w++ {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Hours %s", dates.ShortWeekLabel(labels[w]))).
			Placeholder("H:MM").
			Value(&m.matterForm.Hours[w]))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...))
}

func (m *Model) buildCommentsForm() {
	m.commentsForm = &CommentsFormModel{}
	for i := 0; i < constants.WeeksPerEntry && i < len(m.entry.CapacityComments); i++ {
		m.commentsForm.Comments[i] = m.entry.CapacityComments[i]
	}

	labels := dates.WeekLabels(m.entry.WeekDate)
	fields := make([]huh.Field, 0, constants.WeeksPerEntry)
	for w := 0; w < constants.WeeksPerEntry; w++ {
		fields = append(fields, huh.NewText().
			Title(labels[w]).
			Value(&m.commentsForm.Comments[w]))
	}
	m.form = huh.NewForm(huh.NewGroup(fields...))
}

func (m *Model) buildSettingsForm(section int) {
	m.settingsForm = &SettingsFormModel{}

	titles := map[int]string{
		sectionOffices:   "Office name",
		sectionMentors:   "Mentor name",
		sectionLanguages: "Language name",
		sectionEmployees: "Employee name",
	}

	fields := []huh.Field{
		huh.NewInput().
			Title(titles[section]).
			Value(&m.settingsForm.Value),
	}
	if section == sectionEmployees {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.settingsForm.Password))
	}
	m.form = huh.NewForm(huh.NewGroup(fields...))
}

// applyMatterForm folds the submitted matter form back into the entry.
func (m *Model) applyMatterForm() {
	p := models.Project{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(m.matterForm.Name),
		Category: m.matterForm.Category,
		Owner:    m.matterForm.Owner,
		Tasks:    units.LimitWordCount(m.matterForm.Tasks, constants.CommentWordLimit),
	}
	for w, raw := range m.matterForm.Hours {
		hours := units.NormalizeHoursInput(raw)
		p.Capacities[w] = units.ClampCapacity(units.HoursToPercent(hours))
	}

	if m.editingIndex >= 0 && m.editingIndex < len(m.entry.Projects) {
		p.ID = m.entry.Projects[m.editingIndex].ID
		m.entry.Projects[m.editingIndex] = p
	} else {
		m.entry.Projects = append(m.entry.Projects, p)
	}
	m.editingIndex = -1
	m.matterList.SetMatters(m.entry.Projects)
}

// markDirty schedules a debounced autosave, skipped while required fields
// are missing.
func (m *Model) markDirty() {
	if m.validator.ValidateEntry(m.entry).HasIssues() {
		return
	}
	m.saver.Trigger(m.entry)
}

// saveEntry is the explicit save path: validation blocks it.
func (m *Model) saveEntry() bool {
	result := m.validator.ValidateEntry(m.entry)
	if result.HasIssues() {
		m.issues = result.Issues
		m.previousState = m.state
		m.state = StateIssues
		return false
	}

	m.entry.Projects = m.eng.SortMattersForSave(m.entry.Projects)
	m.matterList.SetMatters(m.entry.Projects)
	if err := m.store.UpsertEntry(m.entry); err != nil {
		m.statusMsg = fmt.Sprintf("Save failed: %v", err)
		return false
	}
	m.statusMsg = ""
	return true
}

func (m *Model) resizeComponents() {
	contentHeight := m.height - 6
	if contentHeight < 0 {
		contentHeight = 0
	}
	m.matterList.SetSize(m.width-4, contentHeight)
	m.dash.SetSize(m.width-4, contentHeight)
}
