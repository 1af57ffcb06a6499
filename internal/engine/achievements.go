package engine

import (
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
)

// EventKind tells the achievement engine what triggered an evaluation.
// Time-of-day awards fire only at the moment of a task completion.
type EventKind int

const (
	EventOther EventKind = iota
	EventHabitCompleted
	EventTaskCompleted
)

// Achievement is a static catalog entry with a declarative unlock predicate.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement string

	// Condition reports whether the achievement holds for the given state
	// at the given moment. Predicates are independent of each other, so
	// evaluation order never affects the result set.
	Condition func(g *GameState, now time.Time, kind EventKind) bool
}

func anyHabitDayDone(g *GameState) bool {
	for i := range g.Habits {
		for _, done := range g.Habits[i].CompletedDays {
			if done {
				return true
			}
		}
	}
	return false
}

func allHabitsDoneToday(g *GameState, now time.Time) bool {
	if len(g.Habits) == 0 {
		return false
	}
	idx := clock.DayIndex(now)
	for i := range g.Habits {
		if !g.Habits[i].CompletedDays[idx] {
			return false
		}
	}
	return true
}

func streakAt(n int) func(*GameState, time.Time, EventKind) bool {
	return func(g *GameState, _ time.Time, _ EventKind) bool { return g.Streak >= n }
}

func levelAt(n int) func(*GameState, time.Time, EventKind) bool {
	return func(g *GameState, _ time.Time, _ EventKind) bool { return g.Level >= n }
}

func xpAt(n int) func(*GameState, time.Time, EventKind) bool {
	return func(g *GameState, _ time.Time, _ EventKind) bool { return g.TotalXPEarned >= n }
}

func habitCountAt(n int) func(*GameState, time.Time, EventKind) bool {
	return func(g *GameState, _ time.Time, _ EventKind) bool { return len(g.Habits) >= n }
}

func tasksLifetimeAt(n int) func(*GameState, time.Time, EventKind) bool {
	return func(g *GameState, _ time.Time, _ EventKind) bool { return g.TotalTasksCompleted >= n }
}

// Catalog returns the full achievement registry. IDs are stable: they are
// persisted in the unlocked set and must never change meaning.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID: "first_habit", Name: "Getting Started",
			Description: "Complete your first habit", Icon: "⭐", Requirement: "Complete 1 habit",
			Condition: func(g *GameState, _ time.Time, _ EventKind) bool { return anyHabitDayDone(g) },
		},
		{
			ID: "first_task", Name: "Quest Beginner",
			Description: "Complete your first task", Icon: "🎯", Requirement: "Complete 1 task",
			Condition: func(g *GameState, _ time.Time, _ EventKind) bool { return g.TotalTasksCompleted >= 1 },
		},

		{ID: "streak_3", Name: "On Fire", Description: "Maintain a 3-day streak", Icon: "🔥", Requirement: "3-day streak", Condition: streakAt(3)},
		{ID: "streak_7", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Requirement: "7-day streak", Condition: streakAt(7)},
		{ID: "streak_14", Name: "Fortnight Fighter", Description: "Maintain a 14-day streak", Icon: "🔥", Requirement: "14-day streak", Condition: streakAt(14)},
		{ID: "streak_30", Name: "Unbreakable", Description: "Maintain a 30-day streak", Icon: "🔥", Requirement: "30-day streak", Condition: streakAt(30)},

		{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", Icon: "⚡", Requirement: "Reach Level 5", Condition: levelAt(5)},
		{ID: "level_10", Name: "Elite Player", Description: "Reach level 10", Icon: "👑", Requirement: "Reach Level 10", Condition: levelAt(10)},
		{ID: "level_20", Name: "Legend", Description: "Reach level 20", Icon: "👑", Requirement: "Reach Level 20", Condition: levelAt(20)},
		{ID: "level_50", Name: "Transcendent", Description: "Reach level 50", Icon: "💫", Requirement: "Reach Level 50", Condition: levelAt(50)},

		{ID: "xp_500", Name: "XP Hunter", Description: "Earn 500 total XP", Icon: "🏅", Requirement: "Earn 500 XP", Condition: xpAt(500)},
		{ID: "xp_2000", Name: "XP Master", Description: "Earn 2000 total XP", Icon: "🏅", Requirement: "Earn 2000 XP", Condition: xpAt(2000)},
		{ID: "xp_5000", Name: "XP Champion", Description: "Earn 5000 total XP", Icon: "🏆", Requirement: "Earn 5000 XP", Condition: xpAt(5000)},
		{ID: "xp_10000", Name: "XP Overlord", Description: "Earn 10000 total XP", Icon: "🏆", Requirement: "Earn 10000 XP", Condition: xpAt(10000)},

		{ID: "habits_5", Name: "Habit Builder", Description: "Create 5 different habits", Icon: "🚀", Requirement: "Create 5 habits", Condition: habitCountAt(5)},
		{ID: "habits_10", Name: "Habit Architect", Description: "Create 10 different habits", Icon: "🚀", Requirement: "Create 10 habits", Condition: habitCountAt(10)},

		{ID: "tasks_10", Name: "Productive", Description: "Complete 10 tasks", Icon: "📋", Requirement: "Complete 10 tasks", Condition: tasksLifetimeAt(10)},
		{ID: "tasks_50", Name: "Achiever", Description: "Complete 50 tasks", Icon: "🏅", Requirement: "Complete 50 tasks", Condition: tasksLifetimeAt(50)},
		{ID: "tasks_100", Name: "Powerhouse", Description: "Complete 100 tasks", Icon: "🏆", Requirement: "Complete 100 tasks", Condition: tasksLifetimeAt(100)},

		{
			ID: "perfect_day", Name: "Perfect Day",
			Description: "Complete 100% of habits & tasks in a day", Icon: "🌟", Requirement: "100% daily completion",
			Condition: func(g *GameState, now time.Time, _ EventKind) bool { return isPerfect(g, now) },
		},
		{
			ID: "perfect_week", Name: "Flawless Week",
			Description: "Accumulate 7 perfect days", Icon: "🌟", Requirement: "7 perfect days",
			Condition: func(g *GameState, _ time.Time, _ EventKind) bool { return g.PerfectDays >= 7 },
		},
		{
			ID: "perfect_month", Name: "Flawless Month",
			Description: "Accumulate 30 perfect days", Icon: "💫", Requirement: "30 perfect days",
			Condition: func(g *GameState, _ time.Time, _ EventKind) bool { return g.PerfectDays >= 30 },
		},

		{
			ID: "early_bird", Name: "Early Bird",
			Description: "Complete a task before 7 AM", Icon: "🌅", Requirement: "Task done before 07:00",
			Condition: func(_ *GameState, now time.Time, kind EventKind) bool {
				return kind == EventTaskCompleted && now.Hour() < 7
			},
		},
		{
			ID: "night_owl", Name: "Night Owl",
			Description: "Complete a task after 11 PM", Icon: "🦉", Requirement: "Task done at or after 23:00",
			Condition: func(_ *GameState, now time.Time, kind EventKind) bool {
				return kind == EventTaskCompleted && now.Hour() >= 23
			},
		},
		{
			ID: "weekend_warrior", Name: "Weekend Warrior",
			Description: "Complete all habits on a weekend day", Icon: "🛡️", Requirement: "All habits done on Sat/Sun",
			Condition: func(g *GameState, now time.Time, _ EventKind) bool {
				return clock.IsWeekend(now) && allHabitsDoneToday(g, now)
			},
		},
		{
			ID: "dedication", Name: "Dedication",
			Description: "Use the tracker on 7 different days", Icon: "📅", Requirement: "7 days of use",
			Condition: func(g *GameState, _ time.Time, _ EventKind) bool { return len(g.DaysUsed) >= 7 },
		},
	}
}

// AchievementStatus pairs a catalog entry with its persisted earned flag.
type AchievementStatus struct {
	Achievement
	Unlocked bool
}

// Achievements returns the catalog with earned status for display.
func (s *Service) Achievements() []AchievementStatus {
	out := make([]AchievementStatus, 0, len(Catalog()))
	for _, a := range Catalog() {
		out = append(out, AchievementStatus{Achievement: a, Unlocked: s.state.HasUnlocked(a.ID)})
	}
	return out
}

// EvaluateAchievements returns the ids newly satisfied and not yet in the
// unlocked set. Pure over its inputs: the caller appends the result to the
// monotonic set and dispatches notifications. An id is never returned twice
// and never revoked, regardless of later regressions.
func EvaluateAchievements(g *GameState, now time.Time, kind EventKind) []string {
	var newly []string
	for _, a := range Catalog() {
		if g.HasUnlocked(a.ID) {
			continue
		}
		if a.Condition(g, now, kind) {
			newly = append(newly, a.ID)
		}
	}
	return newly
}
