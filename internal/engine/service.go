package engine

import (
	"strconv"
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
)

// SaveFunc is invoked after every mutating operation with the next state.
// The persistence gateway decides whether the write is synchronous (local)
// or debounced (remote).
type SaveFunc func(*GameState)

// Service owns the in-memory aggregate and coordinates every mutation:
// rollover check, store mutation, XP ledger, perfect-day detection,
// achievement and challenge evaluation, persistence, notifications.
// Mutations are synchronous and single-threaded by design.
type Service struct {
	state *GameState
	clock clock.Clock
	sink  Sink
	save  SaveFunc
}

// NewService wraps an existing aggregate. A nil state seeds defaults,
// a nil sink discards events, a nil save func disables persistence.
func NewService(state *GameState, clk clock.Clock, sink Sink, save SaveFunc) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if sink == nil {
		sink = NopSink{}
	}
	if save == nil {
		save = func(*GameState) {}
	}
	if state == nil {
		state = NewGameState(clock.DayKey(clk.Now()))
	}
	state.Normalize()
	s := &Service{state: state, clock: clk, sink: sink, save: save}
	s.Rollover()
	return s
}

// State exposes the live aggregate for derived reads. Callers must not
// mutate it; all writes go through Service operations.
func (s *Service) State() *GameState { return s.state }

// Replace swaps in a remote snapshot, last-write-wins. The snapshot fully
// replaces the aggregate; no merging is attempted.
func (s *Service) Replace(next *GameState) {
	if next == nil {
		return
	}
	next.Normalize()
	s.state = next
	s.Rollover()
	s.save(s.state)
}

func (s *Service) now() time.Time { return s.clock.Now() }

// newID mints an opaque identifier, unique within the aggregate.
func (s *Service) newID() string {
	id := strconv.FormatInt(s.now().UnixMilli(), 10)
	for n := 0; s.state.habit(id) != nil || s.state.task(id) != nil; n++ {
		id = strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + strconv.Itoa(n)
	}
	return id
}

// afterMutation runs the derived-state pipeline shared by every operation.
// kind tells the achievement engine which event triggered the evaluation
// (time-of-day awards only consider task completions).
func (s *Service) afterMutation(kind EventKind) {
	now := s.now()
	newly := EvaluateAchievements(s.state, now, kind)
	for _, id := range newly {
		s.state.UnlockedAchievements = append(s.state.UnlockedAchievements, id)
	}
	completed := latchChallenges(s.state, now)
	s.save(s.state)
	for _, id := range newly {
		s.sink.AchievementUnlocked(id)
	}
	for _, id := range completed {
		s.sink.ChallengeCompleted(id)
	}
}

// notifyLevelUp fires a single notification when a delta crossed one or
// more level boundaries, carrying the final level reached.
func (s *Service) notifyLevelUp(before, after int) {
	if after > before {
		s.sink.LevelUp(after)
	}
}

// AddXP applies a raw XP delta outside of any toggle, e.g. a bonus.
func (s *Service) AddXP(amount int) {
	s.Rollover()
	before, after := applyXP(s.state, amount)
	s.notifyLevelUp(before, after)
	s.afterMutation(EventOther)
}
