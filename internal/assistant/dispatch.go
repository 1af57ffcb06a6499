package assistant

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
)

// ToolCall is one structured action emitted by the coaching assistant.
type ToolCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Result reports what applying a tool call did. Suggestions is non-empty
// only for suggest_items; everything else mutates immediately and
// describes itself in Message.
type Result struct {
	Message     string
	Suggestions []*Suggestion
}

// Dispatcher routes tool calls to engine operations.
type Dispatcher struct {
	svc *engine.Service
}

func NewDispatcher(svc *engine.Service) *Dispatcher {
	return &Dispatcher{svc: svc}
}

type addTaskArgs struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

type addHabitArgs struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type editHabitArgs struct {
	HabitID string `json:"habitId"`
	NewName string `json:"newName"`
	NewIcon string `json:"newIcon"`
}

type deleteHabitArgs struct {
	HabitID string `json:"habitId"`
}

type suggestItemsArgs struct {
	Suggestions []struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Icon     string `json:"icon"`
		Priority string `json:"priority"`
		Reason   string `json:"reason"`
	} `json:"suggestions"`
}

// Apply executes call against the engine. Unknown tool names are logged
// and ignored; malformed arguments are errors.
func (d *Dispatcher) Apply(call ToolCall) (*Result, error) {
	switch call.Name {
	case "add_task":
		var args addTaskArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("add_task arguments: %w", err)
		}
		task, err := d.svc.AddTask(args.Title, engine.ParsePriority(args.Priority))
		if err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("Quest added: %q (+%d XP)", task.Title, task.XPReward)}, nil

	case "add_habit":
		var args addHabitArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("add_habit arguments: %w", err)
		}
		habit, err := d.svc.AddHabit(args.Name, args.Icon)
		if err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("New habit added: %s %s", habit.Icon, habit.Name)}, nil

	case "edit_habit":
		var args editHabitArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("edit_habit arguments: %w", err)
		}
		d.svc.EditHabit(args.HabitID, args.NewName, args.NewIcon)
		return &Result{Message: "Habit updated"}, nil

	case "delete_habit":
		var args deleteHabitArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("delete_habit arguments: %w", err)
		}
		d.svc.DeleteHabit(args.HabitID)
		return &Result{Message: "Habit removed from tracking"}, nil

	case "suggest_items":
		var args suggestItemsArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("suggest_items arguments: %w", err)
		}
		out := make([]*Suggestion, 0, len(args.Suggestions))
		for i, s := range args.Suggestions {
			out = append(out, &Suggestion{
				ID:       fmt.Sprintf("suggestion-%d", i),
				Type:     SuggestionType(s.Type),
				Title:    s.Title,
				Icon:     s.Icon,
				Priority: s.Priority,
				Reason:   s.Reason,
				Status:   StatusPending,
			})
		}
		return &Result{Suggestions: out}, nil

	default:
		log.Printf("unknown tool call %q ignored", call.Name)
		return &Result{}, nil
	}
}
