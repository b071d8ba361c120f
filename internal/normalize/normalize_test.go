package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/capworks/captrack/internal/models"
)

func TestProject_LegacyCategoryAliases(t *testing.T) {
	cases := []struct {
		category string
		legacy   string
		want     models.MatterType
	}{
		{"Category1", "", models.MatterCategory1},
		{"Category 1", "", models.MatterCategory1},
		{"Category A", "", models.MatterCategory1},
		{"Category B", "", models.MatterCategory2},
		{"Category C", "", models.MatterProject},
		{" Category 2 ", "", models.MatterCategory2},
		{"", "Category2", models.MatterCategory2},   // legacy field fallback
		{"bogus", "Category1", models.MatterCategory1},
		{"bogus", "also bogus", models.MatterProject}, // catch-all bucket
		{"", "", models.MatterProject},
	}
	for _, c := range cases {
		p := Project(models.Project{
			Category:   models.MatterType(c.category),
			MatterType: models.MatterType(c.legacy),
		})
		if p.Category != c.want || p.MatterType != c.want {
			t.Errorf("Project(category=%q, legacy=%q) resolved to %q/%q, want %q",
				c.category, c.legacy, p.Category, p.MatterType, c.want)
		}
	}
}

func TestProject_ClampsCapacities(t *testing.T) {
	p := Project(models.Project{
		Capacities: models.CapacityVector{-5, 12.3456, 0, 110},
	})
	want := models.CapacityVector{0, 12.346, 0, 110}
	if p.Capacities != want {
		t.Errorf("Capacities = %v, want %v", p.Capacities, want)
	}
}

func TestEntry_FillsDefaults(t *testing.T) {
	e := Entry(models.WeeklyEntry{
		EmployeeName:     "Employee A",
		WeekDate:         "2026-02-02",
		CapacityComments: []string{"busy"},
	})
	if len(e.CapacityComments) != 4 {
		t.Fatalf("expected 4 capacity comments, got %d", len(e.CapacityComments))
	}
	if e.CapacityComments[0] != "busy" || e.CapacityComments[3] != "" {
		t.Errorf("comments not padded correctly: %v", e.CapacityComments)
	}
	if e.Availability != models.AvailabilityWithCapacity {
		t.Errorf("missing availability should default, got %q", e.Availability)
	}
	if e.Languages == nil || e.Projects == nil {
		t.Error("nil slices should become empty slices")
	}
}

func TestEntry_Idempotent(t *testing.T) {
	raw := models.WeeklyEntry{
		WeekDate:     "2026-02-02",
		EmployeeName: "Employee A",
		Languages:    []string{"English"},
		Projects: []models.Project{
			{ID: "1", Name: "Audit", Category: "Category A", Capacities: models.CapacityVector{25.5555, 0, -1, 10}},
			{ID: "2", Name: "Filing", MatterType: "Category C", Owner: "Supervisor 1"},
		},
		CapacityComments: []string{"a", "b", "c", "d", "e", "f"},
	}
	once := Entry(raw)
	twice := Entry(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Entry is not idempotent:\n once: %+v\ntwice: %+v", once, twice)
	}
	if len(once.CapacityComments) != 4 {
		t.Errorf("extra comments should be dropped, got %d", len(once.CapacityComments))
	}
}

func TestEntry_FromLooseJSON(t *testing.T) {
	// An old payload: short capacity arrays, string numbers, ragged leave
	// grid, wrong-typed cells.
	payload := `{
		"weekDate": "2026-02-02",
		"employeeName": "Employee B",
		"annualLeave": [[true, "yes", false], [], [false, false, false, false, true]],
		"projects": [
			{"id": "1", "name": "Audit", "category": "Category 1", "capacities": ["30", 20]}
		]
	}`
	var e models.WeeklyEntry
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	e = Entry(e)

	if !e.AnnualLeave[0][0] || e.AnnualLeave[0][1] {
		t.Errorf("leave grid coerced wrong: %v", e.AnnualLeave[0])
	}
	if !e.AnnualLeave[2][4] {
		t.Errorf("leave grid lost a cell: %v", e.AnnualLeave[2])
	}
	p := e.Projects[0]
	if p.Category != models.MatterCategory1 {
		t.Errorf("category = %q", p.Category)
	}
	want := models.CapacityVector{30, 20, 0, 0}
	if p.Capacities != want {
		t.Errorf("capacities = %v, want %v", p.Capacities, want)
	}
}

func TestDB_NormalizesEveryEntry(t *testing.T) {
	db := map[string]models.WeeklyEntry{
		"Employee A-2026-02-02": {EmployeeName: "Employee A", WeekDate: "2026-02-02"},
		"Employee B-2026-02-02": {EmployeeName: "Employee B", WeekDate: "2026-02-02"},
	}
	out := DB(db)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	for key, e := range out {
		if len(e.CapacityComments) != 4 {
			t.Errorf("entry %s not normalized", key)
		}
	}
}
