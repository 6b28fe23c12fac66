package life

import "time"

// PollInterval is how often hosts should ask Scheduler.Due.
// It is much finer than any display refresh.
const PollInterval = time.Millisecond

// Scheduler paces generation steps independently of the display rate.
//
// A step request records its start time. Hosts then poll Due at
// PollInterval; the frame length is passed on every poll, so a change made
// mid-interval applies to the pending request immediately.
type Scheduler struct {
	start   time.Time
	pending bool
}

// Request arms the scheduler for the next step, measured from now.
func (s *Scheduler) Request(now time.Time) {
	s.start = now
	s.pending = true
}

// Pending reports whether a step has been requested and not yet fired.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Elapsed returns the time since the pending request was made.
func (s *Scheduler) Elapsed(now time.Time) time.Duration {
	if !s.pending {
		return 0
	}
	return now.Sub(s.start)
}

// Due reports whether the pending step should fire. A paused scheduler is
// never due; resuming does not reset the elapsed time.
func (s *Scheduler) Due(now time.Time, frameLength time.Duration, paused bool) bool {
	if !s.pending || paused {
		return false
	}
	return now.Sub(s.start) >= frameLength
}

// Fire consumes the pending request.
func (s *Scheduler) Fire() {
	s.pending = false
}
