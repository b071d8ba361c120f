// Package engine turns normalized weekly entries into the derived figures
// the dashboards display: per-week loads, averages, trend deltas, category
// totals, rankings, and sortable table rows. Everything here is pure
// computation over in-memory snapshots; the engine never fails, it always
// produces a result from whatever normalized data it is given.
package engine

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/dates"
	"github.com/capworks/captrack/internal/models"
)

// TopN is the number of people/matters surfaced by the insight queries.
const TopN = 3

type Engine struct {
	collator *collate.Collator
}

func New() *Engine {
	return &Engine{
		collator: collate.New(language.BritishEnglish),
	}
}

// Row is a dashboard row: a weekly entry plus its derived metrics.
// Recomputed on every read, never persisted.
type Row struct {
	models.WeeklyEntry

	WeeklyLoads    [constants.WeeksPerEntry]int
	AverageLoad    int
	LoadDelta      int
	TotalCategory1 int
	TotalCategory2 int
	TotalProjects  int
}

// WeekLoadRaw returns the unclamped load percentage for one horizon week:
// summed matter allocations plus the leave contribution (each leave day is
// a fifth of the week).
func WeekLoadRaw(e models.WeeklyEntry, week int) float64 {
	leave := float64(e.AnnualLeave.DayCount(week)) / constants.DaysPerWeek * 100
	return e.ProjectLoad(week) + leave
}

// WeekLoadPercent returns the dashboard load for one week: the raw percent
// rounded to a whole number and clamped to [0, 100]. Loads above 100 report
// as 100 here; the raw figure still drives the hours display and flagging.
func WeekLoadPercent(e models.WeeklyEntry, week int) int {
	v := WeekLoadRaw(e, week)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(v))))
}

// WeekHours returns the employee-facing hours total for one week, derived
// from the raw percentage and rounded to the nearest minute. Unlike the
// dashboard percent this is not capped: an overbooked week shows more than
// 40 hours.
func WeekHours(e models.WeeklyEntry, week int) float64 {
	hours := WeekLoadRaw(e, week) / 100 * constants.HoursPerWeek
	return math.Max(0, math.Round(hours*60)/60)
}

// Bucket classifies a load for display. Thresholds are fixed constants.
type Bucket int

const (
	BucketLight Bucket = iota
	BucketModerate
	BucketElevated
	BucketSevere
)

// LoadBucket classifies a whole-percent weekly load.
func LoadBucket(load int) Bucket {
	switch {
	case load >= constants.SevereLoadPercent:
		return BucketSevere
	case load >= constants.ElevatedLoadPercent:
		return BucketElevated
	case load >= constants.ModerateLoadPercent:
		return BucketModerate
	default:
		return BucketLight
	}
}

// HoursBucket classifies a weekly hours total for the employee's own form.
// The thresholds are the hour equivalents of the load buckets.
func HoursBucket(hours float64) Bucket {
	switch {
	case hours > constants.HoursPerWeek:
		return BucketSevere
	case hours >= constants.HoursPerWeek*constants.ElevatedLoadPercent/100:
		return BucketElevated
	case hours >= constants.HoursPerWeek*constants.ModerateLoadPercent/100:
		return BucketModerate
	default:
		return BucketLight
	}
}

// MatterTotals counts an entry's matters per canonical category.
func MatterTotals(projects []models.Project) (category1, category2, project int) {
	for _, p := range projects {
		switch p.Type() {
		case models.MatterCategory1:
			category1++
		case models.MatterCategory2:
			category2++
		default:
			project++
		}
	}
	return category1, category2, project
}

// BuildRow derives the dashboard metrics for a single entry.
func BuildRow(e models.WeeklyEntry) Row {
	row := Row{WeeklyEntry: e}
	sum := 0
	for i := 0; i < constants.WeeksPerEntry; i++ {
		row.WeeklyLoads[i] = WeekLoadPercent(e, i)
		sum += row.WeeklyLoads[i]
	}
	row.AverageLoad = int(math.Round(float64(sum) / constants.WeeksPerEntry))
	row.LoadDelta = row.WeeklyLoads[constants.WeeksPerEntry-1] - row.WeeklyLoads[0]
	row.TotalCategory1, row.TotalCategory2, row.TotalProjects = MatterTotals(e.Projects)
	return row
}

// BuildRows derives dashboard rows for a set of entries, preserving order.
func (g *Engine) BuildRows(entries []models.WeeklyEntry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = BuildRow(e)
	}
	return rows
}

// employeeKey collapses employee names for deduplication: case-insensitive
// and whitespace-trimmed, so "alice" and " Alice " are one person.
func employeeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// newerThan reports whether candidate supersedes current for the same
// employee: a later week wins, and within the same week the later update
// wins.
func newerThan(candidate, current models.WeeklyEntry) bool {
	cw := dates.ParseISODateLocal(candidate.WeekDate)
	ew := dates.ParseISODateLocal(current.WeekDate)
	if !cw.Equal(ew) {
		return cw.After(ew)
	}
	return candidate.LastUpdated.After(current.LastUpdated)
}

// LatestEntries selects, per employee, the most recent entry in the dataset.
// The result is sorted by employee key so downstream ranking ties resolve
// deterministically regardless of map iteration order.
func (g *Engine) LatestEntries(db map[string]models.WeeklyEntry) []models.WeeklyEntry {
	byEmployee := make(map[string]models.WeeklyEntry)
	for _, entry := range db {
		key := employeeKey(entry.EmployeeName)
		existing, ok := byEmployee[key]
		if !ok || newerThan(entry, existing) {
			byEmployee[key] = entry
		}
	}

	out := make([]models.WeeklyEntry, 0, len(byEmployee))
	for _, entry := range byEmployee {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return employeeKey(out[i].EmployeeName) < employeeKey(out[j].EmployeeName)
	})
	return out
}

// LatestEntryFor returns the most recent entry for one employee, matched by
// exact name. Used to prefill the employee's own form.
func LatestEntryFor(name string, db map[string]models.WeeklyEntry) (models.WeeklyEntry, bool) {
	var best models.WeeklyEntry
	found := false
	for _, entry := range db {
		if entry.EmployeeName != name {
			continue
		}
		if !found || newerThan(entry, best) {
			best = entry
			found = true
		}
	}
	return best, found
}
