package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
)

const stateKey = "main"

// StateRepo persists the full game-state aggregate. Save is a whole-state
// replace inside one transaction; the aggregate is small enough that
// partial updates are not worth the bookkeeping.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load reads the stored aggregate. Returns (nil, nil) when no state has
// been saved yet so the caller can seed defaults.
func (r *StateRepo) Load(ctx context.Context) (*engine.GameState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT level, xp, total_xp_earned, streak, last_active_date,
			perfect_days, total_tasks_completed, total_habits_completed
		FROM game_state WHERE key = ?
	`, stateKey)

	g := &engine.GameState{ChallengeCompletions: map[string]string{}}
	err := row.Scan(&g.Level, &g.XP, &g.TotalXPEarned, &g.Streak, &g.LastActiveDate,
		&g.PerfectDays, &g.TotalTasksCompleted, &g.TotalHabitsCompleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("state scan: %w", err)
	}

	if g.Habits, err = r.loadHabits(ctx); err != nil {
		return nil, err
	}
	if g.Tasks, err = r.loadTasks(ctx); err != nil {
		return nil, err
	}
	if g.UnlockedAchievements, err = r.loadAchievements(ctx); err != nil {
		return nil, err
	}
	if err = r.loadChallenges(ctx, g.ChallengeCompletions); err != nil {
		return nil, err
	}
	if g.DaysUsed, err = r.loadDaysUsed(ctx); err != nil {
		return nil, err
	}

	g.Normalize()
	return g, nil
}

// Save replaces the stored aggregate with g.
func (r *StateRepo) Save(ctx context.Context, g *engine.GameState) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO game_state (
				key, level, xp, total_xp_earned, streak, last_active_date,
				perfect_days, total_tasks_completed, total_habits_completed
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				level = excluded.level,
				xp = excluded.xp,
				total_xp_earned = excluded.total_xp_earned,
				streak = excluded.streak,
				last_active_date = excluded.last_active_date,
				perfect_days = excluded.perfect_days,
				total_tasks_completed = excluded.total_tasks_completed,
				total_habits_completed = excluded.total_habits_completed
		`, stateKey, g.Level, g.XP, g.TotalXPEarned, g.Streak, g.LastActiveDate,
			g.PerfectDays, g.TotalTasksCompleted, g.TotalHabitsCompleted); err != nil {
			return fmt.Errorf("state upsert: %w", err)
		}

		for _, table := range []string{"habits", "tasks", "achievements_unlocked", "challenge_completions", "days_used"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for i, h := range g.Habits {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO habits (id, position, name, icon, completed_days) VALUES (?, ?, ?, ?, ?)
			`, h.ID, i, h.Name, h.Icon, encodeDays(h.CompletedDays)); err != nil {
				return fmt.Errorf("habit insert: %w", err)
			}
		}
		for i, t := range g.Tasks {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO tasks (id, position, title, completed, priority, xp_reward) VALUES (?, ?, ?, ?, ?, ?)
			`, t.ID, i, t.Title, boolToInt(t.Completed), string(t.Priority), t.XPReward); err != nil {
				return fmt.Errorf("task insert: %w", err)
			}
		}
		for i, id := range g.UnlockedAchievements {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO achievements_unlocked (id, position) VALUES (?, ?)
			`, id, i); err != nil {
				return fmt.Errorf("achievement insert: %w", err)
			}
		}
		for id, anchor := range g.ChallengeCompletions {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO challenge_completions (id, anchor) VALUES (?, ?)
			`, id, anchor); err != nil {
				return fmt.Errorf("challenge insert: %w", err)
			}
		}
		for _, day := range g.DaysUsed {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO days_used (day) VALUES (?)
			`, day); err != nil {
				return fmt.Errorf("day insert: %w", err)
			}
		}
		return nil
	})
}

func (r *StateRepo) loadHabits(ctx context.Context) ([]engine.Habit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon, completed_days FROM habits ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []engine.Habit
	for rows.Next() {
		var h engine.Habit
		var days string
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &days); err != nil {
			return nil, fmt.Errorf("habit scan: %w", err)
		}
		h.CompletedDays = decodeDays(days)
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit rows: %w", err)
	}
	return out, nil
}

func (r *StateRepo) loadTasks(ctx context.Context) ([]engine.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, completed, priority, xp_reward FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []engine.Task
	for rows.Next() {
		var t engine.Task
		var completed int
		var priority string
		if err := rows.Scan(&t.ID, &t.Title, &completed, &priority, &t.XPReward); err != nil {
			return nil, fmt.Errorf("task scan: %w", err)
		}
		t.Completed = completed != 0
		t.Priority = engine.Priority(priority)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}

func (r *StateRepo) loadAchievements(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM achievements_unlocked ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

func (r *StateRepo) loadChallenges(ctx context.Context, into map[string]string) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, anchor FROM challenge_completions`)
	if err != nil {
		return fmt.Errorf("challenge list: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, anchor string
		if err := rows.Scan(&id, &anchor); err != nil {
			return fmt.Errorf("challenge scan: %w", err)
		}
		into[id] = anchor
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("challenge rows: %w", err)
	}
	return nil
}

func (r *StateRepo) loadDaysUsed(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT day FROM days_used ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("days list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("day scan: %w", err)
		}
		out = append(out, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day rows: %w", err)
	}
	return out, nil
}

// encodeDays packs the 7-slot vector as e.g. "0110000".
func encodeDays(days []bool) string {
	var b strings.Builder
	for i := 0; i < engine.DaysPerWeek; i++ {
		if i < len(days) && days[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func decodeDays(s string) []bool {
	out := make([]bool, engine.DaysPerWeek)
	for i := 0; i < len(s) && i < engine.DaysPerWeek; i++ {
		out[i] = s[i] == '1'
	}
	return out
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
