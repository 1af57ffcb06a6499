package engine

// Sink receives celebration events. Calls are fire-and-forget and must not
// block; the engine does not observe any result.
type Sink interface {
	HabitCompleted()
	TaskCompleted()
	LevelUp(newLevel int)
	AchievementUnlocked(id string)
	PerfectDay()
	ChallengeCompleted(id string)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) HabitCompleted()            {}
func (NopSink) TaskCompleted()             {}
func (NopSink) LevelUp(int)                {}
func (NopSink) AchievementUnlocked(string) {}
func (NopSink) PerfectDay()                {}
func (NopSink) ChallengeCompleted(string)  {}
