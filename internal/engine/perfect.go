package engine

import (
	"math"
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
)

// isPerfect reports whether every habit due today and every task is
// completed. Zero items is defined as not perfect.
func isPerfect(g *GameState, now time.Time) bool {
	total := len(g.Habits) + len(g.Tasks)
	if total == 0 {
		return false
	}
	return completedToday(g, now) == total
}

func completedToday(g *GameState, now time.Time) int {
	idx := clock.DayIndex(now)
	n := 0
	for i := range g.Habits {
		if g.Habits[i].CompletedDays[idx] {
			n++
		}
	}
	for i := range g.Tasks {
		if g.Tasks[i].Completed {
			n++
		}
	}
	return n
}

// CompletionRate returns today's completion percentage, rounded. Zero
// items yields 0, not an error.
func (s *Service) CompletionRate() int {
	g := s.state
	total := len(g.Habits) + len(g.Tasks)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completedToday(g, s.now())) / float64(total) * 100))
}

// checkPerfectDay fires the lifetime counter exactly once per qualifying
// transition: the caller records whether the day was already perfect
// before the toggle.
func (s *Service) checkPerfectDay(wasPerfect bool) {
	if wasPerfect || !isPerfect(s.state, s.now()) {
		return
	}
	s.state.PerfectDays++
	s.sink.PerfectDay()
}
