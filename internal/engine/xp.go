package engine

const (
	// XPPerLevel is the flat per-level threshold. XP always renormalizes
	// into [0, XPPerLevel) after a delta.
	XPPerLevel = 500

	// HabitXP is the reward for completing one habit day.
	HabitXP = 15
)

// applyXP adjusts the ledger by delta and converts overflow into levels.
// Negative deltas clamp at zero: there is no de-leveling, the remainder of
// a large negative delta is discarded. TotalXPEarned accrues only the
// positive portion, so it is a lifetime counter, not a reversible balance.
// Returns the level before and after the delta.
func applyXP(g *GameState, delta int) (levelBefore, levelAfter int) {
	levelBefore = g.Level
	if delta > 0 {
		g.TotalXPEarned += delta
	}
	g.XP += delta
	for g.XP >= XPPerLevel {
		g.XP -= XPPerLevel
		g.Level++
	}
	if g.XP < 0 {
		g.XP = 0
	}
	return levelBefore, g.Level
}
