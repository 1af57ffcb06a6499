package assistant

import (
	"errors"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
)

type SuggestionType string

const (
	SuggestionTask  SuggestionType = "task"
	SuggestionHabit SuggestionType = "habit"
)

type SuggestionStatus string

const (
	StatusPending   SuggestionStatus = "pending"
	StatusAccepted  SuggestionStatus = "accepted"
	StatusDismissed SuggestionStatus = "dismissed"
)

// ErrNotPending is returned when accepting or dismissing a suggestion
// that already reached a terminal state.
var ErrNotPending = errors.New("suggestion is not pending")

// Suggestion is a proposed task or habit awaiting a user decision.
type Suggestion struct {
	ID       string
	Type     SuggestionType
	Title    string
	Icon     string
	Priority string
	Reason   string
	Status   SuggestionStatus
}

// Accept applies the suggestion to the engine and marks it accepted.
// Task suggestions default to medium priority, habit suggestions to a
// star icon, when the assistant left those fields blank.
func (s *Suggestion) Accept(svc *engine.Service) error {
	if s.Status != StatusPending {
		return ErrNotPending
	}

	if s.Type == SuggestionTask {
		if _, err := svc.AddTask(s.Title, engine.ParsePriority(s.Priority)); err != nil {
			return err
		}
	} else {
		icon := s.Icon
		if icon == "" {
			icon = "⭐"
		}
		if _, err := svc.AddHabit(s.Title, icon); err != nil {
			return err
		}
	}

	s.Status = StatusAccepted
	return nil
}

// Dismiss marks the suggestion dismissed without touching the engine.
func (s *Suggestion) Dismiss() error {
	if s.Status != StatusPending {
		return ErrNotPending
	}
	s.Status = StatusDismissed
	return nil
}
