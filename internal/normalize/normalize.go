// Package normalize migrates raw weekly entries, possibly written by older
// schema versions, into canonical shape. It runs on every load and every
// save, so every function here is idempotent: normalizing an already
// normalized value is a no-op.
package normalize

import (
	"github.com/capworks/captrack/internal/constants"
	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/units"
)

// Project canonicalizes one matter: the category is resolved through the
// alias table (legacy matterType honored, unrecognized values land in the
// Project bucket), both category fields are rewritten to the resolved value,
// and every capacity slot is clamped.
func Project(p models.Project) models.Project {
	resolved := p.Type()
	p.Category = resolved
	p.MatterType = resolved
	for i := range p.Capacities {
		p.Capacities[i] = units.ClampCapacity(p.Capacities[i])
	}
	return p
}

// Entry canonicalizes a weekly entry: comments are forced to exactly one per
// horizon week, a missing availability defaults to With Capacity, nil slices
// become empty, and every matter is normalized.
func Entry(e models.WeeklyEntry) models.WeeklyEntry {
	comments := make([]string, constants.WeeksPerEntry)
	for i := 0; i < constants.WeeksPerEntry && i < len(e.CapacityComments); i++ {
		comments[i] = e.CapacityComments[i]
	}
	e.CapacityComments = comments

	if e.Availability == "" {
		e.Availability = models.AvailabilityWithCapacity
	}
	if e.Languages == nil {
		e.Languages = []string{}
	}

	projects := make([]models.Project, len(e.Projects))
	for i, p := range e.Projects {
		projects[i] = Project(p)
	}
	e.Projects = projects

	return e
}

// DB normalizes every entry in a stored dataset.
func DB(source map[string]models.WeeklyEntry) map[string]models.WeeklyEntry {
	out := make(map[string]models.WeeklyEntry, len(source))
	for key, entry := range source {
		out[key] = Entry(entry)
	}
	return out
}
