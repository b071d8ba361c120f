package constants

import "time"

const (
	// HoursPerWeek is the working week every percentage figure is relative to.
	HoursPerWeek = 40.0
	// DaysPerWeek is the number of working days in a tracked week (Mon-Fri).
	DaysPerWeek = 5
	// LeaveHoursPerDay is the load contribution of one annual-leave day.
	LeaveHoursPerDay = HoursPerWeek / DaysPerWeek
	// WeeksPerEntry is the rolling declaration horizon.
	WeeksPerEntry = 4
	// CommentWordLimit caps free-text fields (comments, interests, tasks).
	CommentWordLimit = 250
)

// Load bucket thresholds, in percent of a working week. Fixed, not configurable.
const (
	SevereLoadPercent   = 100
	ElevatedLoadPercent = 80
	ModerateLoadPercent = 40
)

// AutosaveDelay is the quiet period before an edited form is silently persisted.
// A new edit inside the window cancels and reschedules the save.
const AutosaveDelay = 900 * time.Millisecond
