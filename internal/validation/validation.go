// Package validation enumerates the required-field issues in a weekly entry.
// The issue list drives the blocking modal on explicit save; autosave callers
// check it too and simply skip saving while issues remain.
package validation

import (
	"fmt"
	"strings"

	"github.com/capworks/captrack/internal/models"
)

type IssueType string

const (
	IssueMissingOffice     IssueType = "missing_office"
	IssueMissingMentor     IssueType = "missing_mentor"
	IssueMissingLanguages  IssueType = "missing_languages"
	IssueMissingMatterName IssueType = "missing_matter_name"
	IssueMissingCategory   IssueType = "missing_category"
	IssueMissingSupervisor IssueType = "missing_supervisor"
)

// mentorPlaceholder is the dropdown's unselected value; it counts as missing.
const mentorPlaceholder = "Select Mentor"

// Issue is one required-field failure with its user-facing message.
type Issue struct {
	Type    IssueType
	Matter  int // 1-based matter index, 0 for profile-level issues
	Message string
}

type ValidationResult struct {
	Issues []Issue
}

func (r ValidationResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport renders the issue list one message per line.
func (r ValidationResult) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}
	lines := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		lines[i] = issue.Message
	}
	return strings.Join(lines, "\n")
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateEntry checks the required fields of a weekly entry. Profile issues
// come first, then per-matter issues in matter order.
func (v *Validator) ValidateEntry(e models.WeeklyEntry) ValidationResult {
	var result ValidationResult

	if strings.TrimSpace(e.Office) == "" {
		result.Issues = append(result.Issues, Issue{
			Type:    IssueMissingOffice,
			Message: "Office is required.",
		})
	}
	mentor := strings.TrimSpace(e.Mentor)
	if mentor == "" || mentor == mentorPlaceholder {
		result.Issues = append(result.Issues, Issue{
			Type:    IssueMissingMentor,
			Message: "Mentor is required.",
		})
	}
	if len(e.Languages) == 0 {
		result.Issues = append(result.Issues, Issue{
			Type:    IssueMissingLanguages,
			Message: "Working Language(s) is required.",
		})
	}

	for i, p := range e.Projects {
		n := i + 1
		if strings.TrimSpace(p.Name) == "" {
			result.Issues = append(result.Issues, Issue{
				Type:    IssueMissingMatterName,
				Matter:  n,
				Message: fmt.Sprintf("Matter %d: Matter Name is required.", n),
			})
		}
		if strings.TrimSpace(string(p.Category)) == "" && strings.TrimSpace(string(p.MatterType)) == "" {
			result.Issues = append(result.Issues, Issue{
				Type:    IssueMissingCategory,
				Matter:  n,
				Message: fmt.Sprintf("Matter %d: Category is required.", n),
			})
		}
		if strings.TrimSpace(p.Owner) == "" {
			result.Issues = append(result.Issues, Issue{
				Type:    IssueMissingSupervisor,
				Matter:  n,
				Message: fmt.Sprintf("Matter %d: Supervisor is required.", n),
			})
		}
	}

	return result
}
