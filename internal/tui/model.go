package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	keys  KeyMap
	xpBar progress.Model

	width  int
	height int

	habits       []engine.Habit
	tasks        []engine.Task
	level        int
	xp           int
	streak       int
	perfectDays  int
	rate         int
	unlocked     int
	achievements int
	challenges   []engine.ChallengeProgress

	selected int
	todayIdx int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct{ err error }

type toggledMsg struct{ label string }

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		keys:     DefaultKeyMap(),
		xpBar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		loading:  true,
		todayIdx: clock.DayIndex(time.Now()),
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *boardModel) snapshot() {
	g := m.svc.State()
	m.habits = append([]engine.Habit(nil), g.Habits...)
	m.tasks = append([]engine.Task(nil), g.Tasks...)
	m.level = g.Level
	m.xp = g.XP
	m.streak = g.Streak
	m.perfectDays = g.PerfectDays
	m.rate = m.svc.CompletionRate()
	m.unlocked = len(g.UnlockedAchievements)
	m.achievements = len(engine.Catalog())
	m.challenges = m.svc.Challenges()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{}
	}
}

func (m boardModel) toggleCmd(row int) tea.Cmd {
	return func() tea.Msg {
		if row < len(m.habits) {
			h := m.habits[row]
			m.svc.ToggleHabit(h.ID, m.todayIdx)
			return toggledMsg{label: h.Name}
		}
		t := m.tasks[row-len(m.habits)]
		m.svc.ToggleTask(t.ID)
		return toggledMsg{label: t.Title}
	}
}

func (m boardModel) rowCount() int {
	return len(m.habits) + len(m.tasks)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snapshot()
		if m.selected >= m.rowCount() {
			m.selected = m.rowCount() - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case toggledMsg:
		m.snapshot()
		m.lastLog = fmt.Sprintf("Toggled %q. Level %d, %d XP.", msg.label, m.level, m.xp)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if m.selected < 0 || m.selected >= m.rowCount() {
				return m, nil
			}
			return m, m.toggleCmd(m.selected)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "HabitQuest — loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderHabits())
	b.WriteString("\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderChallenges())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	bar := m.xpBar.ViewAs(float64(m.xp) / float64(engine.XPPerLevel))
	stats := fmt.Sprintf("%s Level %d  %s %d/%d XP  %s %d day streak  %s %d/%d unlocked  %s %d%% today",
		ui.IconSparkle, m.level,
		ui.IconBolt, m.xp, engine.XPPerLevel,
		ui.IconFlame, m.streak,
		ui.IconTrophy, m.unlocked, m.achievements,
		ui.IconTarget, m.rate,
	)
	return ui.Heading(ui.IconQuest, "HabitQuest") + "\n" + stats + "\n" + bar
}

func (m boardModel) renderHabits() string {
	out := []string{ui.H2.Render(ui.IconLoop + " Habits (Mon–Sun)")}
	if len(m.habits) == 0 {
		out = append(out, ui.Muted.Render("(no habits yet)"))
	}
	for i, h := range m.habits {
		var week strings.Builder
		for d := 0; d < engine.DaysPerWeek; d++ {
			week.WriteString(ui.DayCell(h.CompletedDays[d], d == m.todayIdx))
			week.WriteString(" ")
		}
		line := fmt.Sprintf("%s %s  %s", h.Icon, h.Name, week.String())
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

func (m boardModel) renderTasks() string {
	out := []string{ui.H2.Render(ui.IconScroll + " Quests")}
	if len(m.tasks) == 0 {
		out = append(out, ui.Muted.Render("(no quests yet)"))
	}
	for i, t := range m.tasks {
		line := fmt.Sprintf("%s %s  %s %s",
			ui.CheckMark(t.Completed), t.Title,
			ui.PriorityText(string(t.Priority)),
			ui.Muted.Render(fmt.Sprintf("+%d xp", t.XPReward)),
		)
		if i+len(m.habits) == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

func (m boardModel) renderChallenges() string {
	out := []string{ui.H2.Render(ui.IconTarget + " Challenges")}
	for _, c := range m.challenges {
		mark := ui.CheckMark(c.Completed)
		out = append(out, fmt.Sprintf("%s %s  %s", mark, c.Title,
			ui.Muted.Render(fmt.Sprintf("%d/%d · +%d xp", c.Current, c.Target, c.XPReward))))
	}
	return strings.Join(out, "\n") + "\n"
}

func (m boardModel) renderFooter() string {
	help := "j/k: move · space/c: toggle · r: refresh · q: quit"
	return ui.Dim.Render(help) + "\n" + ui.Muted.Render(m.lastLog)
}
