package engine

import (
	"sort"
	"time"
)

// deferred is a fire-once callback bound to the epoch it was scheduled in
type deferred struct {
	due   time.Time
	epoch uint64
	seq   uint64
	fn    func()
}

// Scheduler runs fire-once callbacks from the frame loop
// Bump invalidates everything scheduled before it; stale entries are dropped when due
// Not safe for concurrent use, owned by the loop goroutine
type Scheduler struct {
	pending []deferred
	epoch   uint64
	seq     uint64
	stale   uint64
}

// NewScheduler creates an empty scheduler at epoch 0
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run on the first Run at or past now+d
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, deferred{
		due:   now.Add(d),
		epoch: s.epoch,
		seq:   s.seq,
		fn:    fn,
	})
}

// Run executes due callbacks in due order, returns the number executed
// Callbacks scheduled from inside fn wait for a later Run
func (s *Scheduler) Run(now time.Time) int {
	if len(s.pending) == 0 {
		return 0
	}

	var due []deferred
	kept := s.pending[:0]
	for _, d := range s.pending {
		if d.due.After(now) {
			kept = append(kept, d)
		} else {
			due = append(due, d)
		}
	}
	// Clear tail so dropped closures can be collected
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = deferred{}
	}
	s.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, d := range due {
		// An intervening Bump may come from an earlier callback in this batch
		if d.epoch != s.epoch {
			s.stale++
			continue
		}
		d.fn()
		ran++
	}
	return ran
}

// Bump starts a new epoch, revoking every pending callback
func (s *Scheduler) Bump() {
	s.epoch++
}

// Epoch returns the current epoch
func (s *Scheduler) Epoch() uint64 {
	return s.epoch
}

// Pending returns the number of callbacks not yet due, stale ones included
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Stale returns how many callbacks were dropped because of a Bump
func (s *Scheduler) Stale() uint64 {
	return s.stale
}
