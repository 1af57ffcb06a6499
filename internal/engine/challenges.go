package engine

import (
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
)

// Period scopes a challenge to its reset anchor: today's date for daily,
// Monday's date for weekly.
type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// Challenge is a fixed catalog entry. Current progress is derived live
// from the stores, never stored; only the completion latch is persisted,
// keyed by the period anchor it was earned under.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Period      Period
	XPReward    int

	// Progress returns (current, target). current >= target means complete.
	Progress func(g *GameState, now time.Time) (current, target int)
}

// ChallengeProgress is the derived view handed to the UI.
type ChallengeProgress struct {
	Challenge
	Current   int
	Target    int
	Completed bool
}

func tasksCompletedNow(g *GameState) int {
	n := 0
	for i := range g.Tasks {
		if g.Tasks[i].Completed {
			n++
		}
	}
	return n
}

func habitsCompletedToday(g *GameState, now time.Time) int {
	idx := clock.DayIndex(now)
	n := 0
	for i := range g.Habits {
		if g.Habits[i].CompletedDays[idx] {
			n++
		}
	}
	return n
}

// ChallengeCatalog returns the fixed daily and weekly challenge set.
// IDs are stable; clients persist them in the completion map.
func ChallengeCatalog() []Challenge {
	return []Challenge{
		{
			ID: "daily_tasks_3", Title: "Task Master",
			Description: "Complete 3 tasks today", Period: PeriodDaily, XPReward: 50,
			Progress: func(g *GameState, _ time.Time) (int, int) {
				return tasksCompletedNow(g), 3
			},
		},
		{
			ID: "daily_habits_2", Title: "Habit Builder",
			Description: "Complete 2 habits today", Period: PeriodDaily, XPReward: 40,
			Progress: func(g *GameState, now time.Time) (int, int) {
				return habitsCompletedToday(g, now), 2
			},
		},
		{
			ID: "daily_all_habits", Title: "Perfect Routine",
			Description: "Complete all habits today", Period: PeriodDaily, XPReward: 75,
			Progress: func(g *GameState, now time.Time) (int, int) {
				// With no habits there is nothing to complete; target 0 would
				// auto-latch, so report an unreachable target instead.
				if len(g.Habits) == 0 {
					return 0, 1
				}
				return habitsCompletedToday(g, now), len(g.Habits)
			},
		},
		{
			ID: "weekly_tasks_15", Title: "Weekly Warrior",
			Description: "Complete 15 tasks this week", Period: PeriodWeekly, XPReward: 200,
			Progress: func(g *GameState, _ time.Time) (int, int) {
				return tasksCompletedNow(g), 15
			},
		},
		{
			ID: "weekly_streak_5", Title: "Consistency King",
			Description: "Maintain a 5-day streak", Period: PeriodWeekly, XPReward: 150,
			Progress: func(g *GameState, _ time.Time) (int, int) {
				return g.Streak, 5
			},
		},
	}
}

// anchorFor returns the validity anchor for a period at the given moment.
func anchorFor(p Period, now time.Time) string {
	if p == PeriodWeekly {
		return clock.WeekStartKey(now)
	}
	return clock.DayKey(now)
}

// purgeStaleChallenges drops stored completions whose recorded anchor no
// longer matches the current period anchor, and completions for ids that
// left the catalog.
func purgeStaleChallenges(g *GameState, now time.Time) {
	valid := map[string]Period{}
	for _, c := range ChallengeCatalog() {
		valid[c.ID] = c.Period
	}
	for id, anchor := range g.ChallengeCompletions {
		p, ok := valid[id]
		if !ok || anchor != anchorFor(p, now) {
			delete(g.ChallengeCompletions, id)
		}
	}
}

// latchChallenges records, once per period anchor, every challenge whose
// derived progress has reached its target. Returns the newly completed
// ids. The reward value is display metadata; completion does not feed the
// XP ledger.
func latchChallenges(g *GameState, now time.Time) []string {
	purgeStaleChallenges(g, now)
	var completed []string
	for _, c := range ChallengeCatalog() {
		if _, done := g.ChallengeCompletions[c.ID]; done {
			continue
		}
		cur, target := c.Progress(g, now)
		if cur >= target {
			g.ChallengeCompletions[c.ID] = anchorFor(c.Period, now)
			completed = append(completed, c.ID)
		}
	}
	return completed
}

// Challenges returns the live progress view, current clamped to target.
func (s *Service) Challenges() []ChallengeProgress {
	now := s.now()
	purgeStaleChallenges(s.state, now)
	out := make([]ChallengeProgress, 0, len(ChallengeCatalog()))
	for _, c := range ChallengeCatalog() {
		cur, target := c.Progress(s.state, now)
		if cur > target {
			cur = target
		}
		_, done := s.state.ChallengeCompletions[c.ID]
		out = append(out, ChallengeProgress{
			Challenge: c,
			Current:   cur,
			Target:    target,
			Completed: done || cur >= target,
		})
	}
	return out
}
