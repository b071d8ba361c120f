package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/models"
)

// Settings is the team-wide configuration: the dropdown option lists and the
// shared credentials. Passwords are stored in the clear; this is a local
// single-team tool.
type Settings struct {
	Offices       []string          `json:"offices"`
	Mentors       []string          `json:"mentors"`
	Languages     []string          `json:"languages"`
	Employees     []models.Employee `json:"employees"`
	AdminPassword string            `json:"adminPassword"`
	ITPassword    string            `json:"itPassword"`
}

// Clone returns a copy whose slices share nothing with the original, so a
// caller can edit option lists without mutating the stored settings.
func (s Settings) Clone() Settings {
	out := s
	if s.Offices != nil {
		out.Offices = append([]string(nil), s.Offices...)
	}
	if s.Mentors != nil {
		out.Mentors = append([]string(nil), s.Mentors...)
	}
	if s.Languages != nil {
		out.Languages = append([]string(nil), s.Languages...)
	}
	if s.Employees != nil {
		out.Employees = append([]models.Employee(nil), s.Employees...)
	}
	return out
}

// DefaultSettings returns the seeded configuration used on first init.
func DefaultSettings() Settings {
	return Settings{
		Offices: []string{
			"Office A", "Office B", "Office C", "Office D", "Office E", "Office F",
		},
		Mentors: []string{
			"Mentor 1", "Mentor 2", "Mentor 3", "Mentor 4",
		},
		Languages: []string{
			"English", "French", "German", "Dutch", "Spanish", "Mandarin", "Arabic",
		},
		Employees: []models.Employee{
			{Name: "Employee A", Password: "pass123"},
			{Name: "Employee B", Password: "pass123"},
			{Name: "Employee C", Password: "pass123"},
			{Name: "Employee D", Password: "pass123"},
			{Name: "Employee E", Password: "pass123"},
			{Name: "Employee F", Password: "pass123"},
		},
		AdminPassword: "admin123",
		ITPassword:    "itpass123",
	}
}

// SeedEntries returns the sample dataset used on first init, keyed for
// storage. The week date is the current week's Monday so the seed shows up
// on the dashboards immediately.
func SeedEntries() map[string]models.WeeklyEntry {
	week := dates.CurrentWeekStart()
	now := time.Now()

	a := models.WeeklyEntry{
		WeekDate:     week,
		EmployeeName: "Employee A",
		Office:       "Office A",
		Mentor:       "Mentor 1",
		Languages:    []string{"English", "French"},
		Availability: models.AvailabilityWithCapacity,
		Projects: []models.Project{
			{
				ID:         uuid.NewString(),
				Name:       "Project Alpha",
				Category:   models.MatterCategory1,
				MatterType: models.MatterCategory1,
				Owner:      "Mentor 1",
				Capacities: models.CapacityVector{25, 25, 20, 10},
			},
			{
				ID:         uuid.NewString(),
				Name:       "Project Beta",
				Category:   models.MatterCategory1,
				MatterType: models.MatterCategory1,
				Owner:      "Mentor 2",
				Capacities: models.CapacityVector{20, 20, 15, 10},
			},
		},
		CapacityComments: make([]string, 4),
		LastUpdated:      now,
	}

	b := models.WeeklyEntry{
		WeekDate:     week,
		EmployeeName: "Employee B",
		Office:       "Office B",
		Mentor:       "Mentor 2",
		Languages:    []string{"English"},
		Availability: models.AvailabilityWithCapacity,
		Projects:     []models.Project{},
		CapacityComments: []string{
			"", "", "", "On leave all week",
		},
		LastUpdated: now,
	}
	b.AnnualLeave[0][0] = true
	for day := 0; day < 5; day++ {
		b.AnnualLeave[3][day] = true
	}

	return map[string]models.WeeklyEntry{
		a.Key(): a,
		b.Key(): b,
	}
}
