package root

import (
	"fmt"
	"io"
	"os"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

// printSink renders celebration events to the terminal as they happen.
type printSink struct {
	out io.Writer
}

func newPrintSink() *printSink {
	return &printSink{out: os.Stdout}
}

func (p *printSink) HabitCompleted() {}
func (p *printSink) TaskCompleted()  {}

func (p *printSink) LevelUp(level int) {
	fmt.Fprintf(p.out, "%s %s  Level %d!\n", ui.IconSparkle, ui.BadgeLevelUp, level)
}

func (p *printSink) AchievementUnlocked(id string) {
	name := id
	for _, a := range engine.Catalog() {
		if a.ID == id {
			name = a.Icon + " " + a.Name
			break
		}
	}
	fmt.Fprintf(p.out, "%s %s %s\n", ui.IconTrophy, ui.Gold.Render("Achievement unlocked:"), name)
}

func (p *printSink) PerfectDay() {
	fmt.Fprintf(p.out, "%s %s\n", ui.IconStar, ui.Gold.Render("Perfect day! Everything done."))
}

func (p *printSink) ChallengeCompleted(id string) {
	title := id
	for _, c := range engine.ChallengeCatalog() {
		if c.ID == id {
			title = c.Title
			break
		}
	}
	fmt.Fprintf(p.out, "%s %s %s\n", ui.IconTarget, ui.Good.Render("Challenge complete:"), title)
}
