package engine

import "strings"

// AddHabit appends a habit with a fresh id and an all-false week vector.
// No XP side effect.
func (s *Service) AddHabit(name, icon string) (*Habit, error) {
	s.Rollover()
	n, err := normalizeTitle(name)
	if err != nil {
		return nil, err
	}
	h := Habit{
		ID:            s.newID(),
		Name:          n,
		Icon:          icon,
		CompletedDays: make([]bool, DaysPerWeek),
	}
	s.state.Habits = append(s.state.Habits, h)
	s.afterMutation(EventOther)
	return s.state.habit(h.ID), nil
}

// ToggleHabit flips the completion slot at dayIndex. Completing grants XP
// and notifies the sink; un-completing deducts XP silently. An unknown id
// or out-of-range index is a no-op.
func (s *Service) ToggleHabit(habitID string, dayIndex int) {
	s.Rollover()
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return
	}
	h := s.state.habit(habitID)
	if h == nil {
		return
	}

	wasPerfect := isPerfect(s.state, s.now())
	completing := !h.CompletedDays[dayIndex]
	h.CompletedDays[dayIndex] = completing

	delta := HabitXP
	if !completing {
		delta = -HabitXP
	}
	before, after := applyXP(s.state, delta)

	kind := EventOther
	if completing {
		kind = EventHabitCompleted
		s.state.TotalHabitsCompleted++
		s.sink.HabitCompleted()
	}
	s.notifyLevelUp(before, after)
	s.checkPerfectDay(wasPerfect)
	s.afterMutation(kind)
}

// EditHabit replaces name and/or icon. Empty arguments keep the existing
// value; the completion vector is never touched. Unknown id is a no-op.
func (s *Service) EditHabit(habitID, newName, newIcon string) {
	s.Rollover()
	h := s.state.habit(habitID)
	if h == nil {
		return
	}
	if n := strings.TrimSpace(newName); n != "" {
		h.Name = n
	}
	if i := strings.TrimSpace(newIcon); i != "" {
		h.Icon = i
	}
	s.afterMutation(EventOther)
}

// DeleteHabit removes the habit. XP already granted for completed days is
// not revoked. Unknown id is a no-op.
func (s *Service) DeleteHabit(habitID string) {
	s.Rollover()
	for i := range s.state.Habits {
		if s.state.Habits[i].ID == habitID {
			s.state.Habits = append(s.state.Habits[:i], s.state.Habits[i+1:]...)
			s.afterMutation(EventOther)
			return
		}
	}
}
