// Package autosave debounces form edits into save callbacks. Every edit
// resets the quiet-period timer; the callback fires only once edits stop for
// the configured delay.
package autosave

import (
	"sync"
	"time"

	"github.com/capworks/captrack/internal/models"
)

// Saver coalesces entry snapshots and delivers the latest one to the save
// callback after a quiet period. The callback runs on the timer goroutine;
// callers that need single-threaded handling should hand the entry off from
// the callback (the TUI forwards it into its update loop).
type Saver struct {
	delay time.Duration
	save  func(models.WeeklyEntry)

	mu      sync.Mutex
	timer   *time.Timer
	pending models.WeeklyEntry
	armed   bool
	stopped bool
}

func New(delay time.Duration, save func(models.WeeklyEntry)) *Saver {
	return &Saver{delay: delay, save: save}
}

// Trigger schedules a save of the given snapshot, cancelling any pending one.
// Only the snapshot from the most recent Trigger is ever saved.
func (s *Saver) Trigger(entry models.WeeklyEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = entry
	s.armed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	if s.stopped || !s.armed {
		s.mu.Unlock()
		return
	}
	entry := s.pending
	s.armed = false
	s.timer = nil
	s.mu.Unlock()

	s.save(entry)
}

// Flush fires a pending save immediately instead of waiting out the delay.
// A no-op when nothing is pending.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.fire()
}

// Stop cancels any pending save and rejects future triggers. Called on
// screen teardown so an in-flight debounce cannot save a dismissed form.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.armed = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
