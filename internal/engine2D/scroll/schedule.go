package scroll

import (
	"math"
	"sort"
	"time"
)

type pendingReveal struct {
	node Node
	due  time.Duration
	rule Rule
}

// Schedule holds time-deferred reveals. A node is queued at most once per
// session, so re-evaluating a passed gate does not stack timers.
type Schedule struct {
	queued  map[Node]struct{}
	pending []pendingReveal
}

func NewSchedule() *Schedule {
	return &Schedule{queued: make(map[Node]struct{})}
}

// Add queues n to reveal at due. It returns false if n was queued before.
func (s *Schedule) Add(n Node, due time.Duration, rule Rule) bool {
	if _, ok := s.queued[n]; ok {
		return false
	}
	s.queued[n] = struct{}{}
	s.pending = append(s.pending, pendingReveal{node: n, due: due, rule: rule})
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].due < s.pending[j].due
	})
	return true
}

// DueAfter is now plus a delay in seconds. Delays past the largest
// representable duration saturate so the reveal never fires early.
func DueAfter(now time.Duration, seconds float64) time.Duration {
	const maxSeconds = math.MaxInt64 / float64(time.Second)
	if math.IsNaN(seconds) || seconds >= maxSeconds {
		return math.MaxInt64
	}
	if seconds <= -maxSeconds {
		return now
	}
	delay := time.Duration(seconds * float64(time.Second))
	if delay > 0 && now > math.MaxInt64-delay {
		return math.MaxInt64
	}
	return now + delay
}

// Fire reveals every node whose due time is not after now and returns how
// many fired.
func (s *Schedule) Fire(now time.Duration) int {
	fired := 0
	for fired < len(s.pending) && s.pending[fired].due <= now {
		p := s.pending[fired]
		Reveal(p.node, p.rule)
		fired++
	}
	if fired > 0 {
		s.pending = append(s.pending[:0], s.pending[fired:]...)
	}
	return fired
}

// Len is the number of reveals still waiting.
func (s *Schedule) Len() int { return len(s.pending) }
