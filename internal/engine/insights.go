package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/capworks/captrack/internal/constants"
)

// WeekSummary aggregates one horizon week across the whole team.
type WeekSummary struct {
	AverageLoad      int
	WithCapacity     int // rows under the elevated threshold
	AtOrOverCapacity int
	AverageLeaveDays float64
}

// WeeklySummary computes the per-week team summary over a deduplicated row
// set.
func (g *Engine) WeeklySummary(rows []Row) [constants.WeeksPerEntry]WeekSummary {
	var out [constants.WeeksPerEntry]WeekSummary
	for week := range out {
		s := WeekSummary{}
		total := 0
		leaveDays := 0
		for _, row := range rows {
			load := row.WeeklyLoads[week]
			total += load
			if load < constants.ElevatedLoadPercent {
				s.WithCapacity++
			} else {
				s.AtOrOverCapacity++
			}
			leaveDays += row.AnnualLeave.DayCount(week)
		}
		if len(rows) > 0 {
			s.AverageLoad = int(math.Round(float64(total) / float64(len(rows))))
			s.AverageLeaveDays = float64(leaveDays) / float64(len(rows))
		}
		out[week] = s
	}
	return out
}

// PersonLoad is one ranked employee in the busiest/least-busy lists.
type PersonLoad struct {
	Name string
	Load int
}

// MatterDemand is one ranked matter in the top-demand list, merged across
// employees by matter name.
type MatterDemand struct {
	Name  string
	Total int
}

// WeekInsights is the insight panel for one selected week.
type WeekInsights struct {
	AverageLoad    int
	AtCapacity     int // load in [80, 100)
	OverCapacity   int // load >= 100
	LookingForWork int // load < 80
	MostLoaded     []PersonLoad
	LeastLoaded    []PersonLoad
	TopMatters     []MatterDemand
}

// Insights computes the ranking panel for the selected week over a
// deduplicated row set. Ranking ties keep the input's employee order, which
// LatestEntries makes deterministic.
func (g *Engine) Insights(rows []Row, week int) WeekInsights {
	if week < 0 || week >= constants.WeeksPerEntry {
		week = 0
	}

	out := WeekInsights{}
	total := 0
	for _, row := range rows {
		load := row.WeeklyLoads[week]
		total += load
		switch {
		case load >= constants.SevereLoadPercent:
			out.OverCapacity++
		case load >= constants.ElevatedLoadPercent:
			out.AtCapacity++
		default:
			out.LookingForWork++
		}
	}
	if len(rows) > 0 {
		out.AverageLoad = int(math.Round(float64(total) / float64(len(rows))))
	}

	ranked := make([]Row, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeeklyLoads[week] > ranked[j].WeeklyLoads[week]
	})
	out.MostLoaded = topPeople(ranked, week)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeeklyLoads[week] < ranked[j].WeeklyLoads[week]
	})
	out.LeastLoaded = topPeople(ranked, week)

	out.TopMatters = topMatters(rows, week)
	return out
}

func topPeople(ranked []Row, week int) []PersonLoad {
	n := TopN
	if len(ranked) < n {
		n = len(ranked)
	}
	people := make([]PersonLoad, 0, n)
	for _, row := range ranked[:n] {
		people = append(people, PersonLoad{
			Name: strings.TrimSpace(row.EmployeeName),
			Load: row.WeeklyLoads[week],
		})
	}
	return people
}

// topMatters sums each matter's allocation for the week across all rows,
// keyed by name so same-named matters merge, drops non-positive sums, and
// returns the top entries rounded to whole percent.
func topMatters(rows []Row, week int) []MatterDemand {
	totals := make(map[string]float64)
	for _, row := range rows {
		for _, p := range row.Projects {
			load := p.Capacities[week]
			if load <= 0 {
				continue
			}
			name := p.Name
			if name == "" {
				name = "(Untitled)"
			}
			totals[name] += load
		}
	}

	demands := make([]MatterDemand, 0, len(totals))
	for name, total := range totals {
		demands = append(demands, MatterDemand{Name: name, Total: int(math.Round(total))})
	}
	sort.Slice(demands, func(i, j int) bool {
		if demands[i].Total != demands[j].Total {
			return demands[i].Total > demands[j].Total
		}
		return demands[i].Name < demands[j].Name
	})
	if len(demands) > TopN {
		demands = demands[:TopN]
	}
	return demands
}
