package engine

import (
	"testing"
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
)

// recordSink captures every celebration event for assertions.
type recordSink struct {
	habitDone    int
	taskDone     int
	levelUps     []int
	achievements []string
	perfectDays  int
	challenges   []string
}

func (r *recordSink) HabitCompleted()              { r.habitDone++ }
func (r *recordSink) TaskCompleted()               { r.taskDone++ }
func (r *recordSink) LevelUp(l int)                { r.levelUps = append(r.levelUps, l) }
func (r *recordSink) AchievementUnlocked(id string) { r.achievements = append(r.achievements, id) }
func (r *recordSink) PerfectDay()                  { r.perfectDays++ }
func (r *recordSink) ChallengeCompleted(id string) { r.challenges = append(r.challenges, id) }

func (r *recordSink) unlocked(id string) bool {
	for _, a := range r.achievements {
		if a == id {
			return true
		}
	}
	return false
}

// tuesdayNoon is a fixed weekday instant used by most tests: day index 1,
// hour 12, so no weekend or time-of-day award can fire by accident.
var tuesdayNoon = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

func emptyState(now time.Time) *GameState {
	return &GameState{
		Level:                1,
		Streak:               1,
		LastActiveDate:       clock.DayKey(now),
		DaysUsed:             []string{clock.DayKey(now)},
		ChallengeCompletions: map[string]string{},
	}
}

func newTestService(t *testing.T, now time.Time) (*Service, *recordSink) {
	t.Helper()
	sink := &recordSink{}
	svc := NewService(emptyState(now), clock.Fixed{T: now}, sink, nil)
	return svc, sink
}

func TestToggleHabitIsItsOwnInverse(t *testing.T) {
	svc, sink := newTestService(t, tuesdayNoon)
	h, err := svc.AddHabit("Exercise", "💪")
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	xpBefore := svc.State().XP
	svc.ToggleHabit(h.ID, 1)
	if got := svc.State().XP; got != xpBefore+HabitXP {
		t.Fatalf("xp after complete=%d, want %d", got, xpBefore+HabitXP)
	}
	if sink.habitDone != 1 {
		t.Fatalf("habitDone=%d, want 1", sink.habitDone)
	}

	svc.ToggleHabit(h.ID, 1)
	if got := svc.State().XP; got != xpBefore {
		t.Fatalf("xp after uncomplete=%d, want %d", got, xpBefore)
	}
	if svc.State().habit(h.ID).CompletedDays[1] {
		t.Fatalf("day slot should be false after double toggle")
	}
	// Un-completing never notifies.
	if sink.habitDone != 1 {
		t.Fatalf("habitDone=%d after inverse, want 1", sink.habitDone)
	}
}

func TestToggleUnknownIDsAreNoOps(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	before := *svc.State()

	svc.ToggleHabit("nope", 0)
	svc.ToggleTask("nope")
	svc.EditHabit("nope", "x", "y")
	svc.DeleteHabit("nope")
	svc.DeleteTask("nope")

	after := svc.State()
	if after.XP != before.XP || after.Level != before.Level || len(after.Habits) != 0 || len(after.Tasks) != 0 {
		t.Fatalf("state mutated by unknown-id operations")
	}
}

func TestToggleHabitDayIndexOutOfRange(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	h, _ := svc.AddHabit("Read", "📚")
	svc.ToggleHabit(h.ID, -1)
	svc.ToggleHabit(h.ID, DaysPerWeek)
	if svc.State().XP != 0 {
		t.Fatalf("out-of-range toggle changed xp")
	}
}

func TestTaskLifetimeCounterNeverDecrements(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	task, err := svc.AddTask("Ship it", PriorityHigh)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	svc.ToggleTask(task.ID)
	svc.ToggleTask(task.ID)
	svc.ToggleTask(task.ID)

	g := svc.State()
	if g.TotalTasksCompleted != 2 {
		t.Fatalf("TotalTasksCompleted=%d, want 2", g.TotalTasksCompleted)
	}
	if g.XP != task.XPReward {
		t.Fatalf("xp=%d, want %d", g.XP, task.XPReward)
	}
	// TotalXPEarned accrues every completion, the deduction never subtracts.
	if g.TotalXPEarned != 2*task.XPReward {
		t.Fatalf("TotalXPEarned=%d, want %d", g.TotalXPEarned, 2*task.XPReward)
	}
}

func TestEditHabitKeepsEmptyFields(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	h, _ := svc.AddHabit("Meditate", "🧘")
	svc.ToggleHabit(h.ID, 1)

	svc.EditHabit(h.ID, "Morning meditation", "")
	got := svc.State().habit(h.ID)
	if got.Name != "Morning meditation" || got.Icon != "🧘" {
		t.Fatalf("edit: name=%q icon=%q", got.Name, got.Icon)
	}
	if !got.CompletedDays[1] {
		t.Fatalf("edit must not touch the completion vector")
	}

	svc.EditHabit(h.ID, "", "🌄")
	got = svc.State().habit(h.ID)
	if got.Name != "Morning meditation" || got.Icon != "🌄" {
		t.Fatalf("icon-only edit: name=%q icon=%q", got.Name, got.Icon)
	}
}

func TestDeleteDoesNotReconcileXP(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	h, _ := svc.AddHabit("Exercise", "💪")
	svc.ToggleHabit(h.ID, 1)
	xp := svc.State().XP

	svc.DeleteHabit(h.ID)
	if svc.State().XP != xp {
		t.Fatalf("delete revoked xp")
	}
	if len(svc.State().Habits) != 0 {
		t.Fatalf("habit not deleted")
	}
}

func TestPerfectDayCountsOncePerTransition(t *testing.T) {
	svc, sink := newTestService(t, tuesdayNoon)
	h1, _ := svc.AddHabit("Exercise", "💪")
	h2, _ := svc.AddHabit("Read", "📚")
	task, _ := svc.AddTask("Review goals", PriorityLow)

	today := clock.DayIndex(tuesdayNoon)
	svc.ToggleHabit(h1.ID, today)
	svc.ToggleTask(task.ID)
	if sink.perfectDays != 0 {
		t.Fatalf("perfect day fired before the day was complete")
	}

	svc.ToggleHabit(h2.ID, today)
	if sink.perfectDays != 1 || svc.State().PerfectDays != 1 {
		t.Fatalf("perfectDays sink=%d state=%d, want 1/1", sink.perfectDays, svc.State().PerfectDays)
	}

	// Re-toggling the closing item away and back counts a second transition;
	// toggling an already-perfect day never double counts within one state.
	svc.ToggleHabit(h2.ID, today)
	svc.ToggleHabit(h2.ID, today)
	if svc.State().PerfectDays != 2 {
		t.Fatalf("PerfectDays=%d after second transition, want 2", svc.State().PerfectDays)
	}
}

func TestPerfectDayOrderIndependent(t *testing.T) {
	today := clock.DayIndex(tuesdayNoon)
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}
	for _, order := range orders {
		svc, _ := newTestService(t, tuesdayNoon)
		h1, _ := svc.AddHabit("Exercise", "💪")
		h2, _ := svc.AddHabit("Read", "📚")
		task, _ := svc.AddTask("Review goals", PriorityLow)

		steps := []func(){
			func() { svc.ToggleHabit(h1.ID, today) },
			func() { svc.ToggleHabit(h2.ID, today) },
			func() { svc.ToggleTask(task.ID) },
		}
		for _, i := range order {
			steps[i]()
		}
		if svc.State().PerfectDays != 1 {
			t.Fatalf("order %v: PerfectDays=%d, want 1", order, svc.State().PerfectDays)
		}
	}
}

func TestZeroItemsIsNeverPerfect(t *testing.T) {
	svc, sink := newTestService(t, tuesdayNoon)
	if svc.CompletionRate() != 0 {
		t.Fatalf("completion rate with zero items=%d, want 0", svc.CompletionRate())
	}
	if sink.perfectDays != 0 || svc.State().PerfectDays != 0 {
		t.Fatalf("perfect day fired on empty state")
	}
}

func TestFreshStateScenario(t *testing.T) {
	// Three high-priority tasks from a fresh level 1 / xp 0 state.
	svc, sink := newTestService(t, tuesdayNoon)
	for _, title := range []string{"One", "Two", "Three"} {
		task, err := svc.AddTask(title, PriorityHigh)
		if err != nil {
			t.Fatalf("AddTask %s: %v", title, err)
		}
		svc.ToggleTask(task.ID)
	}

	g := svc.State()
	if g.XP != 150 || g.Level != 1 || g.TotalXPEarned != 150 {
		t.Fatalf("xp=%d level=%d total=%d, want 150/1/150", g.XP, g.Level, g.TotalXPEarned)
	}
	if !sink.unlocked("first_task") {
		t.Fatalf("first_task should unlock")
	}
	if sink.unlocked("tasks_10") {
		t.Fatalf("tasks_10 must not unlock at 3 completions")
	}
}

func TestHabitsFiveUnlocksOnce(t *testing.T) {
	svc, sink := newTestService(t, tuesdayNoon)
	names := []string{"a", "b", "c", "d", "e", "f"}
	for i, n := range names {
		if _, err := svc.AddHabit(n, "⭐"); err != nil {
			t.Fatalf("AddHabit %d: %v", i, err)
		}
		if i == 4 && !sink.unlocked("habits_5") {
			t.Fatalf("habits_5 should unlock on the 5th habit")
		}
	}
	count := 0
	for _, id := range sink.achievements {
		if id == "habits_5" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("habits_5 fired %d times, want 1", count)
	}
}

func TestSaveHookRunsAfterEveryMutation(t *testing.T) {
	saves := 0
	var last *GameState
	sink := &recordSink{}
	svc := NewService(emptyState(tuesdayNoon), clock.Fixed{T: tuesdayNoon}, sink, func(g *GameState) {
		saves++
		last = g
	})

	h, _ := svc.AddHabit("Exercise", "💪")
	svc.ToggleHabit(h.ID, 0)
	task, _ := svc.AddTask("x", PriorityLow)
	svc.ToggleTask(task.ID)

	if saves != 4 {
		t.Fatalf("saves=%d, want 4", saves)
	}
	if last == nil || last.TotalTasksCompleted != 1 {
		t.Fatalf("save hook received stale state")
	}
}

func TestReplaceIsLastWriteWins(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	if _, err := svc.AddHabit("Local", "🏠"); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	remote := emptyState(tuesdayNoon)
	remote.Level = 9
	remote.TotalXPEarned = 4200
	svc.Replace(remote)

	g := svc.State()
	if g.Level != 9 || len(g.Habits) != 0 {
		t.Fatalf("replace did not fully overwrite: level=%d habits=%d", g.Level, len(g.Habits))
	}
}
