package engine

import (
	"fmt"
	"strings"
)

// Priority classifies a task and fixes its XP reward at creation time.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// XPReward returns the reward frozen into a task created with this priority.
func (p Priority) XPReward() int {
	switch p {
	case PriorityLow:
		return 10
	case PriorityHigh:
		return 50
	default:
		return 25
	}
}

// ParsePriority parses user input to a Priority.
// Empty or unrecognized input falls back to medium.
func ParsePriority(input string) Priority {
	s := strings.TrimSpace(strings.ToLower(input))
	p := Priority(s)
	if p.IsValid() {
		return p
	}
	return PriorityMedium
}

// DaysPerWeek is the fixed length of a habit's completion vector.
const DaysPerWeek = 7

// Habit is a recurring item tracked per weekday, Monday=0 .. Sunday=6.
type Habit struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	CompletedDays []bool `json:"completedDays"`
}

// Task is a one-off item whose completion flag resets daily.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	XPReward  int      `json:"xpReward"`
}

// GameState is the unit of persistence: progression, collections, and every
// lifetime counter the achievement engine keys on.
type GameState struct {
	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	TotalXPEarned int    `json:"totalXpEarned"`
	Streak        int    `json:"streak"`
	Habits        []Habit `json:"habits"`
	Tasks         []Task  `json:"tasks"`

	LastActiveDate       string   `json:"lastActiveDate"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
	PerfectDays          int      `json:"perfectDays"`
	TotalTasksCompleted  int      `json:"totalTasksCompleted"`
	TotalHabitsCompleted int      `json:"totalHabitsCompleted"`
	DaysUsed             []string `json:"daysUsed"`

	// ChallengeCompletions maps challenge id to the period anchor date it was
	// completed under. Stale anchors are purged on evaluation.
	ChallengeCompletions map[string]string `json:"challengeCompletions"`
}

// NewGameState returns the seed aggregate used on first run.
func NewGameState(today string) *GameState {
	return &GameState{
		Level:  1,
		XP:     0,
		Streak: 1,
		Habits: []Habit{
			{ID: "1", Name: "Exercise", Icon: "💪", CompletedDays: make([]bool, DaysPerWeek)},
			{ID: "2", Name: "Read", Icon: "📚", CompletedDays: make([]bool, DaysPerWeek)},
			{ID: "3", Name: "Meditate", Icon: "🧘", CompletedDays: make([]bool, DaysPerWeek)},
			{ID: "4", Name: "Drink Water", Icon: "💧", CompletedDays: make([]bool, DaysPerWeek)},
		},
		Tasks: []Task{
			{ID: "1", Title: "Complete morning routine", Priority: PriorityHigh, XPReward: PriorityHigh.XPReward()},
			{ID: "2", Title: "Work on main project", Priority: PriorityHigh, XPReward: PriorityHigh.XPReward()},
			{ID: "3", Title: "Review goals", Priority: PriorityLow, XPReward: PriorityLow.XPReward()},
		},
		LastActiveDate:       today,
		DaysUsed:             []string{today},
		ChallengeCompletions: map[string]string{},
	}
}

// Normalize repairs invariants after deserialization: 7-slot vectors,
// non-nil maps and slices, xp within range.
func (g *GameState) Normalize() {
	if g.Level < 1 {
		g.Level = 1
	}
	if g.XP < 0 {
		g.XP = 0
	}
	for i := range g.Habits {
		if len(g.Habits[i].CompletedDays) != DaysPerWeek {
			v := make([]bool, DaysPerWeek)
			copy(v, g.Habits[i].CompletedDays)
			g.Habits[i].CompletedDays = v
		}
	}
	for i := range g.Tasks {
		if !g.Tasks[i].Priority.IsValid() {
			g.Tasks[i].Priority = PriorityMedium
		}
		if g.Tasks[i].XPReward <= 0 {
			g.Tasks[i].XPReward = g.Tasks[i].Priority.XPReward()
		}
	}
	if g.ChallengeCompletions == nil {
		g.ChallengeCompletions = map[string]string{}
	}
}

func (g *GameState) habit(id string) *Habit {
	for i := range g.Habits {
		if g.Habits[i].ID == id {
			return &g.Habits[i]
		}
	}
	return nil
}

func (g *GameState) task(id string) *Task {
	for i := range g.Tasks {
		if g.Tasks[i].ID == id {
			return &g.Tasks[i]
		}
	}
	return nil
}

// HasUnlocked reports whether the achievement id is already in the
// monotonic unlocked set.
func (g *GameState) HasUnlocked(id string) bool {
	for _, u := range g.UnlockedAchievements {
		if u == id {
			return true
		}
	}
	return false
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", fmt.Errorf("title is required")
	}
	return t, nil
}
