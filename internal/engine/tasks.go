package engine

// AddTask appends a task whose XP reward is frozen from the priority at
// creation time. Priority is immutable for the task's lifetime.
func (s *Service) AddTask(title string, priority Priority) (*Task, error) {
	s.Rollover()
	tt, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	t := Task{
		ID:       s.newID(),
		Title:    tt,
		Priority: priority,
		XPReward: priority.XPReward(),
	}
	s.state.Tasks = append(s.state.Tasks, t)
	s.afterMutation(EventOther)
	return s.state.task(t.ID), nil
}

// ToggleTask flips the completion flag. Completing grants the frozen
// reward, bumps the lifetime completed counter, and notifies; un-completing
// deducts the reward but never decrements the lifetime counter. Unknown id
// is a no-op.
func (s *Service) ToggleTask(taskID string) {
	s.Rollover()
	t := s.state.task(taskID)
	if t == nil {
		return
	}

	wasPerfect := isPerfect(s.state, s.now())
	t.Completed = !t.Completed

	delta := t.XPReward
	if !t.Completed {
		delta = -t.XPReward
	}
	before, after := applyXP(s.state, delta)

	kind := EventOther
	if t.Completed {
		kind = EventTaskCompleted
		s.state.TotalTasksCompleted++
		s.sink.TaskCompleted()
	}
	s.notifyLevelUp(before, after)
	s.checkPerfectDay(wasPerfect)
	s.afterMutation(kind)
}

// DeleteTask removes the task without XP reconciliation. Unknown id is a
// no-op.
func (s *Service) DeleteTask(taskID string) {
	s.Rollover()
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.afterMutation(EventOther)
			return
		}
	}
}
