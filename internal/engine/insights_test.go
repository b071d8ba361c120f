package engine

import (
	"testing"

	"github.com/capworks/captrack/internal/models"
)

func teamRows(g *Engine) []Row {
	entries := []models.WeeklyEntry{
		{
			WeekDate:     "2026-02-02",
			EmployeeName: "Employee A",
			Projects: []models.Project{
				{Name: "Audit", Category: models.MatterCategory1, Capacities: models.CapacityVector{30, 0, 0, 0}},
				{Name: "Filing", Category: models.MatterProject, Capacities: models.CapacityVector{10, 0, 0, 0}},
			},
		},
		{
			WeekDate:     "2026-02-02",
			EmployeeName: "Employee B",
			Projects: []models.Project{
				{Name: "Audit", Category: models.MatterCategory1, Capacities: models.CapacityVector{40, 0, 0, 0}},
				{Name: "Review", Category: models.MatterCategory2, Capacities: models.CapacityVector{45, 0, 0, 0}},
			},
		},
		{
			WeekDate:     "2026-02-02",
			EmployeeName: "Employee C",
			Projects: []models.Project{
				{Name: "Crunch", Category: models.MatterProject, Capacities: models.CapacityVector{110, 0, 0, 0}},
			},
		},
	}
	return g.BuildRows(entries)
}

func TestInsights_BucketsAndAverage(t *testing.T) {
	g := New()
	in := g.Insights(teamRows(g), 0)

	// Loads: 40, 85, 100 (clamped).
	if in.LookingForWork != 1 || in.AtCapacity != 1 || in.OverCapacity != 1 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/1",
			in.LookingForWork, in.AtCapacity, in.OverCapacity)
	}
	if in.AverageLoad != 75 {
		t.Errorf("AverageLoad = %d, want 75", in.AverageLoad)
	}
}

func TestInsights_Rankings(t *testing.T) {
	g := New()
	in := g.Insights(teamRows(g), 0)

	if len(in.MostLoaded) != 3 || in.MostLoaded[0].Name != "Employee C" {
		t.Errorf("MostLoaded = %+v, want Employee C first", in.MostLoaded)
	}
	if in.LeastLoaded[0].Name != "Employee A" || in.LeastLoaded[0].Load != 40 {
		t.Errorf("LeastLoaded = %+v, want Employee A at 40 first", in.LeastLoaded)
	}
}

func TestInsights_TopMattersMergeByName(t *testing.T) {
	g := New()
	in := g.Insights(teamRows(g), 0)

	if len(in.TopMatters) != 3 {
		t.Fatalf("TopMatters = %+v, want 3 entries", in.TopMatters)
	}
	if in.TopMatters[0].Name != "Crunch" || in.TopMatters[0].Total != 110 {
		t.Errorf("top matter = %+v, want Crunch at 110", in.TopMatters[0])
	}
	// Audit appears on two entries and merges: 30 + 40.
	if in.TopMatters[1].Name != "Audit" || in.TopMatters[1].Total != 70 {
		t.Errorf("second matter = %+v, want Audit at 70", in.TopMatters[1])
	}
}

func TestInsights_UntitledAndZeroMatters(t *testing.T) {
	g := New()
	rows := g.BuildRows([]models.WeeklyEntry{
		{
			WeekDate:     "2026-02-02",
			EmployeeName: "Employee A",
			Projects: []models.Project{
				{Name: "", Capacities: models.CapacityVector{20, 0, 0, 0}},
				{Name: "Idle", Capacities: models.CapacityVector{0, 0, 0, 0}},
			},
		},
	})
	in := g.Insights(rows, 0)
	if len(in.TopMatters) != 1 {
		t.Fatalf("zero-allocation matters should drop: %+v", in.TopMatters)
	}
	if in.TopMatters[0].Name != "(Untitled)" {
		t.Errorf("unnamed matter = %q, want (Untitled)", in.TopMatters[0].Name)
	}
}

func TestWeeklySummary(t *testing.T) {
	g := New()
	entries := []models.WeeklyEntry{
		{
			WeekDate:     "2026-02-02",
			EmployeeName: "Employee A",
			Projects: []models.Project{
				{Name: "Audit", Capacities: models.CapacityVector{90, 0, 0, 0}},
			},
		},
		{
			WeekDate:     "2026-02-02",
			EmployeeName: "Employee B",
			AnnualLeave:  func() models.LeaveGrid { var l models.LeaveGrid; l[0][0] = true; return l }(),
		},
	}
	summary := g.WeeklySummary(g.BuildRows(entries))

	wk := summary[0]
	// Loads: 90 and 20. Average 55.
	if wk.AverageLoad != 55 {
		t.Errorf("AverageLoad = %d, want 55", wk.AverageLoad)
	}
	if wk.WithCapacity != 1 || wk.AtOrOverCapacity != 1 {
		t.Errorf("capacity split = %d/%d, want 1/1", wk.WithCapacity, wk.AtOrOverCapacity)
	}
	if wk.AverageLeaveDays != 0.5 {
		t.Errorf("AverageLeaveDays = %v, want 0.5", wk.AverageLeaveDays)
	}

	later := summary[1]
	if later.AverageLoad != 0 || later.WithCapacity != 2 {
		t.Errorf("quiet week summary wrong: %+v", later)
	}
}

func TestWeeklySummary_Empty(t *testing.T) {
	g := New()
	summary := g.WeeklySummary(nil)
	if summary[0].AverageLoad != 0 || summary[0].AverageLeaveDays != 0 {
		t.Errorf("empty summary should be zero: %+v", summary[0])
	}
}
