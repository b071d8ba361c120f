package dashboard

import (
	"testing"

	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/engine"
	"github.com/capworks/captrack/internal/models"
)

func TestSetRows_LabelsFollowCurrentWeek(t *testing.T) {
	eng := engine.New()
	m := New(eng, 80, 24)

	// A dataset whose first-sorted entry is long stale must not relabel the
	// table to that old week.
	stale := eng.BuildRows([]models.WeeklyEntry{
		{WeekDate: "2020-01-06", EmployeeName: "Employee A"},
	})
	m.SetRows(stale)

	want := dates.WeekLabels(dates.CurrentWeekStart())
	if m.weekLabels != want {
		t.Errorf("week labels follow a stale entry: got %v, want %v", m.weekLabels, want)
	}
}
