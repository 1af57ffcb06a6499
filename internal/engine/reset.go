package engine

import "github.com/Satvik374/success-habit-tracker/internal/clock"

// Rollover applies the daily reset policy. If the stored last-active date
// is not today, every habit vector and task completion flag is cleared,
// the streak extends or restarts depending on whether the previous active
// day was yesterday, and the last-active date advances. Today is always
// deduplicate-appended to the days-used set, so calling this twice in one
// day is a no-op the second time. Lifetime fields (xp, level, totals,
// unlocks, perfect days) are never touched.
func (s *Service) Rollover() {
	today := clock.DayKey(s.now())
	g := s.state

	if g.LastActiveDate != today {
		for i := range g.Habits {
			g.Habits[i].CompletedDays = make([]bool, DaysPerWeek)
		}
		for i := range g.Tasks {
			g.Tasks[i].Completed = false
		}
		yesterday := clock.DayKey(s.now().AddDate(0, 0, -1))
		if g.LastActiveDate == yesterday {
			g.Streak++
		} else {
			g.Streak = 1
		}
		g.LastActiveDate = today
	}
	appendDayUsed(g, today)
	purgeStaleChallenges(g, s.now())
}

func appendDayUsed(g *GameState, day string) {
	for _, d := range g.DaysUsed {
		if d == day {
			return
		}
	}
	g.DaysUsed = append(g.DaysUsed, day)
}
