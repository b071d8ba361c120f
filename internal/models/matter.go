package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/capworks/captrack/internal/constants"
)

type MatterType string

const (
	MatterCategory1 MatterType = "Category1"
	MatterCategory2 MatterType = "Category2"
	MatterProject   MatterType = "Project"
)

// matterTypeAliases maps stored category strings, including legacy spellings,
// onto the canonical enumeration. Matching is exact after trimming.
var matterTypeAliases = map[string]MatterType{
	"Category1":  MatterCategory1,
	"Category2":  MatterCategory2,
	"Project":    MatterProject,
	"Category 1": MatterCategory1,
	"Category 2": MatterCategory2,
	"Category A": MatterCategory1,
	"Category B": MatterCategory2,
	"Category C": MatterProject,
}

// CoerceMatterType maps a raw category string to a canonical MatterType.
// The second return value reports whether the value was recognized.
func CoerceMatterType(value string) (MatterType, bool) {
	t, ok := matterTypeAliases[strings.TrimSpace(value)]
	return t, ok
}

// ResolveMatterType picks the canonical type for a matter: the category field
// wins if it maps, then the legacy matterType field, then the Project
// catch-all bucket.
func ResolveMatterType(category, legacy string) MatterType {
	if t, ok := CoerceMatterType(category); ok {
		return t
	}
	if t, ok := CoerceMatterType(legacy); ok {
		return t
	}
	return MatterProject
}

// MatterTypes returns the canonical categories in their fixed display and
// sort order.
func MatterTypes() []MatterType {
	return []MatterType{MatterCategory1, MatterCategory2, MatterProject}
}

// CategoryOrder returns the fixed sort rank of a matter type. Unrecognized
// values rank with the Project bucket.
func CategoryOrder(t MatterType) int {
	switch t {
	case MatterCategory1:
		return 0
	case MatterCategory2:
		return 1
	default:
		return 2
	}
}

// CapacityVector holds one percentage-of-week allocation per horizon week.
type CapacityVector [constants.WeeksPerEntry]float64

// UnmarshalJSON tolerates stored capacity arrays of any length with numeric,
// string-numeric, null, or garbage elements. Missing or unparseable slots
// become 0; clamping to the canonical representation happens in normalization.
func (v *CapacityVector) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		*v = CapacityVector{}
		return nil
	}
	var out CapacityVector
	for i := 0; i < constants.WeeksPerEntry && i < len(raw); i++ {
		switch val := raw[i].(type) {
		case float64:
			out[i] = val
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
				out[i] = f
			}
		}
	}
	*v = out
	return nil
}

// Total returns the summed allocation across all horizon weeks.
func (v CapacityVector) Total() float64 {
	var sum float64
	for _, c := range v {
		sum += c
	}
	return sum
}

// Project is one allocation line ("matter") within a weekly entry. The ID is
// unique within the owning entry only; matters are never shared across
// entries.
type Project struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   MatterType     `json:"category"`
	MatterType MatterType     `json:"matterType,omitempty"` // legacy field kept for old payloads
	Owner      string         `json:"owner"`
	Tasks      string         `json:"tasks,omitempty"`
	Capacities CapacityVector `json:"capacities"`
}

// Type resolves the canonical category of the matter, honoring the legacy
// field fallback.
func (p Project) Type() MatterType {
	return ResolveMatterType(string(p.Category), string(p.MatterType))
}
