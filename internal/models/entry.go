package models

import (
	"encoding/json"
	"time"

	"github.com/capworks/captrack/internal/constants"
)

type Availability string

const (
	AvailabilityWithCapacity    Availability = "With Capacity"
	AvailabilityLimitedCapacity Availability = "Limited Capacity"
	AvailabilityNoCapacity      Availability = "No Capacity"
	AvailabilityOverCapacity    Availability = "Over Capacity"
)

// Availabilities returns the self-assessment enumeration in display order.
func Availabilities() []Availability {
	return []Availability{
		AvailabilityWithCapacity,
		AvailabilityLimitedCapacity,
		AvailabilityNoCapacity,
		AvailabilityOverCapacity,
	}
}

// LeaveGrid is the fixed 4-week x Mon-Fri annual-leave grid.
type LeaveGrid [constants.WeeksPerEntry][constants.DaysPerWeek]bool

// UnmarshalJSON tolerates grids of any shape; missing or non-boolean cells
// default to false.
func (g *LeaveGrid) UnmarshalJSON(data []byte) error {
	var raw [][]any
	if err := json.Unmarshal(data, &raw); err != nil {
		*g = LeaveGrid{}
		return nil
	}
	var out LeaveGrid
	for w := 0; w < constants.WeeksPerEntry && w < len(raw); w++ {
		for d := 0; d < constants.DaysPerWeek && d < len(raw[w]); d++ {
			if b, ok := raw[w][d].(bool); ok {
				out[w][d] = b
			}
		}
	}
	*g = out
	return nil
}

// DayCount returns the number of leave days taken in the given horizon week.
func (g LeaveGrid) DayCount(week int) int {
	if week < 0 || week >= constants.WeeksPerEntry {
		return 0
	}
	count := 0
	for _, off := range g[week] {
		if off {
			count++
		}
	}
	return count
}

// WeeklyEntry is one employee's declaration for the 4-week horizon starting
// at WeekDate (a Monday, YYYY-MM-DD).
type WeeklyEntry struct {
	WeekDate         string       `json:"weekDate"`
	EmployeeName     string       `json:"employeeName"`
	Office           string       `json:"office"`
	Mentor           string       `json:"mentor"`
	Languages        []string     `json:"languages"`
	Interests        string       `json:"interests"`
	AnnualLeave      LeaveGrid    `json:"annualLeave"`
	Availability     Availability `json:"availability2Weeks"`
	CapacityComments []string     `json:"capacityComments"`
	Projects         []Project    `json:"projects"`
	LastUpdated      time.Time    `json:"lastUpdated"`
}

// Key returns the storage key the entry is upserted under.
func (e WeeklyEntry) Key() string {
	return e.EmployeeName + "-" + e.WeekDate
}

// Clone returns a copy whose slice fields share nothing with the original.
// Stores hand out clones so callers can edit an entry without writing
// through to the stored copy.
func (e WeeklyEntry) Clone() WeeklyEntry {
	out := e
	if e.Languages != nil {
		out.Languages = append([]string(nil), e.Languages...)
	}
	if e.CapacityComments != nil {
		out.CapacityComments = append([]string(nil), e.CapacityComments...)
	}
	if e.Projects != nil {
		out.Projects = append([]Project(nil), e.Projects...)
	}
	return out
}

// ProjectLoad returns the summed matter allocation, in percent, for the given
// horizon week.
func (e WeeklyEntry) ProjectLoad(week int) float64 {
	var sum float64
	for _, p := range e.Projects {
		if week >= 0 && week < constants.WeeksPerEntry {
			sum += p.Capacities[week]
		}
	}
	return sum
}
