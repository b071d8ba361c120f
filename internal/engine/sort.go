package engine

import (
	"fmt"
	"sort"

	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/models"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortKey identifies a dashboard table column. WeekSortKey builds the
// per-week load keys.
type SortKey string

const (
	SortByNone         SortKey = ""
	SortByEmployee     SortKey = "employee"
	SortByOffice       SortKey = "office"
	SortByAvailability SortKey = "availability"
	SortByAverageLoad  SortKey = "average"
	SortByLoadDelta    SortKey = "delta"
	SortByCategory1    SortKey = "category1"
	SortByCategory2    SortKey = "category2"
	SortByProjects     SortKey = "projects"
)

// WeekSortKey returns the sort key for a horizon week's load column.
func WeekSortKey(week int) SortKey {
	return SortKey(fmt.Sprintf("week%d", week+1))
}

// SortState is the single active table sort. The zero value means no sort
// is selected, in which case the table falls back to the active week's load
// descending.
type SortState struct {
	Key       SortKey
	Direction Direction
}

// Request applies a header click: the same key toggles direction, a new key
// resets to ascending.
func (s *SortState) Request(key SortKey) {
	if s.Key == key && s.Direction == Ascending {
		s.Direction = Descending
		return
	}
	s.Key = key
	s.Direction = Ascending
}

// Active reports whether an explicit sort is selected.
func (s SortState) Active() bool {
	return s.Key != SortByNone
}

// SortRows returns a sorted copy of the row set. String columns compare
// through the locale collator, numeric columns numerically. With no explicit
// sort the rows order by the active week's load, busiest first.
func (g *Engine) SortRows(rows []Row, state SortState, activeWeek int) []Row {
	applied := state
	if !applied.Active() {
		applied = SortState{Key: WeekSortKey(activeWeek), Direction: Descending}
	}

	out := make([]Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		less := g.rowLess(out[i], out[j], applied.Key)
		if applied.Direction == Descending {
			return g.rowLess(out[j], out[i], applied.Key)
		}
		return less
	})
	return out
}

func (g *Engine) rowLess(a, b Row, key SortKey) bool {
	switch key {
	case SortByEmployee:
		return g.collator.CompareString(a.EmployeeName, b.EmployeeName) < 0
	case SortByOffice:
		return g.collator.CompareString(a.Office, b.Office) < 0
	case SortByAvailability:
		return g.collator.CompareString(string(a.Availability), string(b.Availability)) < 0
	case SortByAverageLoad:
		return a.AverageLoad < b.AverageLoad
	case SortByLoadDelta:
		return a.LoadDelta < b.LoadDelta
	case SortByCategory1:
		return a.TotalCategory1 < b.TotalCategory1
	case SortByCategory2:
		return a.TotalCategory2 < b.TotalCategory2
	case SortByProjects:
		return a.TotalProjects < b.TotalProjects
	default:
		for week := 0; week < constants.WeeksPerEntry; week++ {
			if key == WeekSortKey(week) {
				return a.WeeklyLoads[week] < b.WeeklyLoads[week]
			}
		}
		return false
	}
}

// SortMattersForSave orders an entry's matters for persistence: canonical
// category first, then descending load week by week, then descending
// four-week total, then name. Unlike the table sort this ordering is written
// back to the stored entry.
func (g *Engine) SortMattersForSave(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if d := models.CategoryOrder(a.Type()) - models.CategoryOrder(b.Type()); d != 0 {
			return d < 0
		}
		for week := 0; week < constants.WeeksPerEntry; week++ {
			if a.Capacities[week] != b.Capacities[week] {
				return a.Capacities[week] > b.Capacities[week]
			}
		}
		if at, bt := a.Capacities.Total(), b.Capacities.Total(); at != bt {
			return at > bt
		}
		return g.collator.CompareString(a.Name, b.Name) < 0
	})
	return out
}
