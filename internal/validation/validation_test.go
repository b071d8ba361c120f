package validation

import (
	"testing"

	"github.com/capworks/captrack/internal/models"
)

func completeEntry() models.WeeklyEntry {
	return models.WeeklyEntry{
		WeekDate:     "2026-02-02",
		EmployeeName: "Employee A",
		Office:       "Office A",
		Mentor:       "Mentor 1",
		Languages:    []string{"English"},
		Projects: []models.Project{
			{
				ID:         "1",
				Name:       "Audit",
				Category:   models.MatterCategory1,
				Owner:      "Supervisor 1",
				Capacities: models.CapacityVector{25, 25, 20, 10},
			},
		},
	}
}

func TestValidateEntry_Complete(t *testing.T) {
	validator := New()

	result := validator.ValidateEntry(completeEntry())

	if result.HasIssues() {
		t.Errorf("Expected no issues, got: %s", result.FormatReport())
	}
}

func TestValidateEntry_MissingProfileFields(t *testing.T) {
	validator := New()

	e := completeEntry()
	e.Office = "  "
	e.Mentor = ""
	e.Languages = nil

	result := validator.ValidateEntry(e)

	wantMessages := []string{
		"Office is required.",
		"Mentor is required.",
		"Working Language(s) is required.",
	}
	if len(result.Issues) != len(wantMessages) {
		t.Fatalf("Expected %d issues, got: %s", len(wantMessages), result.FormatReport())
	}
	for i, want := range wantMessages {
		if result.Issues[i].Message != want {
			t.Errorf("Issue %d = %q, want %q", i, result.Issues[i].Message, want)
		}
	}
}

func TestValidateEntry_MentorPlaceholderIsMissing(t *testing.T) {
	validator := New()

	e := completeEntry()
	e.Mentor = "Select Mentor"

	result := validator.ValidateEntry(e)

	if len(result.Issues) != 1 || result.Issues[0].Type != IssueMissingMentor {
		t.Errorf("Expected a single mentor issue, got: %s", result.FormatReport())
	}
}

func TestValidateEntry_MatterIssuesAreNumbered(t *testing.T) {
	validator := New()

	e := completeEntry()
	e.Projects = append(e.Projects, models.Project{ID: "2"}) // fully empty matter

	result := validator.ValidateEntry(e)

	wantMessages := []string{
		"Matter 2: Matter Name is required.",
		"Matter 2: Category is required.",
		"Matter 2: Supervisor is required.",
	}
	if len(result.Issues) != len(wantMessages) {
		t.Fatalf("Expected %d issues, got: %s", len(wantMessages), result.FormatReport())
	}
	for i, want := range wantMessages {
		if result.Issues[i].Message != want {
			t.Errorf("Issue %d = %q, want %q", i, result.Issues[i].Message, want)
		}
		if result.Issues[i].Matter != 2 {
			t.Errorf("Issue %d matter index = %d, want 2", i, result.Issues[i].Matter)
		}
	}
}

func TestValidateEntry_LegacyTypeSatisfiesCategory(t *testing.T) {
	validator := New()

	e := completeEntry()
	e.Projects[0].Category = ""
	e.Projects[0].MatterType = models.MatterCategory2

	result := validator.ValidateEntry(e)

	if result.HasIssues() {
		t.Errorf("Legacy type field should satisfy the category check, got: %s", result.FormatReport())
	}
}

func TestValidateEntry_ProfileIssuesPrecedeMatterIssues(t *testing.T) {
	validator := New()

	e := completeEntry()
	e.Office = ""
	e.Projects[0].Owner = ""

	result := validator.ValidateEntry(e)

	if len(result.Issues) != 2 {
		t.Fatalf("Expected 2 issues, got: %s", result.FormatReport())
	}
	if result.Issues[0].Type != IssueMissingOffice || result.Issues[1].Type != IssueMissingSupervisor {
		t.Errorf("Issue order wrong: %s", result.FormatReport())
	}
}

func TestFormatReport_NoIssues(t *testing.T) {
	result := ValidationResult{}

	if got := result.FormatReport(); got != "No issues detected." {
		t.Errorf("Expected 'No issues detected.', got: %s", got)
	}
}
