package engine

import (
	"reflect"
	"testing"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
)

func TestRolloverClearsDailyStateOnly(t *testing.T) {
	yesterday := tuesdayNoon.AddDate(0, 0, -1)
	svc, _ := newTestService(t, yesterday)
	h, _ := svc.AddHabit("Exercise", "💪")
	task, _ := svc.AddTask("Ship", PriorityHigh)
	svc.ToggleHabit(h.ID, clock.DayIndex(yesterday))
	svc.ToggleTask(task.ID)

	g := svc.State()
	xp, level, total := g.XP, g.Level, g.TotalXPEarned
	unlocked := append([]string(nil), g.UnlockedAchievements...)

	// Same state, new day.
	svc2 := NewService(g, clock.Fixed{T: tuesdayNoon}, &recordSink{}, nil)
	g2 := svc2.State()

	for _, done := range g2.habit(h.ID).CompletedDays {
		if done {
			t.Fatalf("habit vector not cleared on rollover")
		}
	}
	if g2.task(task.ID).Completed {
		t.Fatalf("task flag not cleared on rollover")
	}
	if g2.LastActiveDate != clock.DayKey(tuesdayNoon) {
		t.Fatalf("lastActiveDate=%s, want %s", g2.LastActiveDate, clock.DayKey(tuesdayNoon))
	}
	if g2.XP != xp || g2.Level != level || g2.TotalXPEarned != total {
		t.Fatalf("rollover touched lifetime progression")
	}
	if !reflect.DeepEqual(g2.UnlockedAchievements, unlocked) {
		t.Fatalf("rollover touched unlocked achievements")
	}

	wantDays := []string{clock.DayKey(yesterday), clock.DayKey(tuesdayNoon)}
	if !reflect.DeepEqual(g2.DaysUsed, wantDays) {
		t.Fatalf("daysUsed=%v, want %v", g2.DaysUsed, wantDays)
	}
}

func TestRolloverIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	h, _ := svc.AddHabit("Read", "📚")
	svc.ToggleHabit(h.ID, clock.DayIndex(tuesdayNoon))

	before := snapshot(svc.State())
	svc.Rollover()
	once := snapshot(svc.State())
	svc.Rollover()
	twice := snapshot(svc.State())

	if !reflect.DeepEqual(before, once) || !reflect.DeepEqual(once, twice) {
		t.Fatalf("same-day rollover is not idempotent:\nbefore=%v\nonce=%v\ntwice=%v", before, once, twice)
	}
}

func TestRolloverExtendsStreakOnConsecutiveDays(t *testing.T) {
	yesterday := tuesdayNoon.AddDate(0, 0, -1)
	svc, _ := newTestService(t, yesterday)
	if svc.State().Streak != 1 {
		t.Fatalf("seed streak = %d, want 1", svc.State().Streak)
	}

	svc2 := NewService(svc.State(), clock.Fixed{T: tuesdayNoon}, &recordSink{}, nil)
	if svc2.State().Streak != 2 {
		t.Fatalf("streak = %d after consecutive day, want 2", svc2.State().Streak)
	}

	// Skipping a day restarts the streak at 1.
	friday := tuesdayNoon.AddDate(0, 0, 3)
	svc3 := NewService(svc2.State(), clock.Fixed{T: friday}, &recordSink{}, nil)
	if svc3.State().Streak != 1 {
		t.Fatalf("streak = %d after a gap, want 1", svc3.State().Streak)
	}
}

func TestRolloverDeduplicatesDaysUsed(t *testing.T) {
	svc, _ := newTestService(t, tuesdayNoon)
	svc.Rollover()
	svc.Rollover()
	if len(svc.State().DaysUsed) != 1 {
		t.Fatalf("daysUsed=%v, want single entry", svc.State().DaysUsed)
	}
}

func TestWeeklyAnchorSurvivesDailyRollover(t *testing.T) {
	// A weekly completion recorded Tuesday is still honored Wednesday of the
	// same week, but discarded the following Monday.
	svc, _ := newTestService(t, tuesdayNoon)
	svc.State().Streak = 5
	svc.Rollover()
	svc.afterMutation(EventOther)
	if _, ok := svc.State().ChallengeCompletions["weekly_streak_5"]; !ok {
		t.Fatalf("weekly_streak_5 should latch at streak 5")
	}

	wednesday := tuesdayNoon.AddDate(0, 0, 1)
	svc2 := NewService(svc.State(), clock.Fixed{T: wednesday}, &recordSink{}, nil)
	if _, ok := svc2.State().ChallengeCompletions["weekly_streak_5"]; !ok {
		t.Fatalf("weekly completion dropped within the same week")
	}

	nextMonday := tuesdayNoon.AddDate(0, 0, 6)
	svc3 := NewService(svc2.State(), clock.Fixed{T: nextMonday}, &recordSink{}, nil)
	if _, ok := svc3.State().ChallengeCompletions["weekly_streak_5"]; ok {
		t.Fatalf("weekly completion survived into the next week")
	}
}

func snapshot(g *GameState) GameState {
	cp := *g
	return cp
}
