package recorder

import "time"

// Session describes one demo run.
type Session struct {
	ID        string
	StartedAt time.Time
	Theme     string
	Scenario  string
}

// TierChange is one transition of the tier showcase.
type TierChange struct {
	SessionID string
	TierIndex int
	TierName  string
	Ratio     float64
	Playing   bool
	Source    string // "timer", "manual" or "toggle"
}

// PlaybackStep is one state change of a scenario playback.
type PlaybackStep struct {
	SessionID  string
	ScenarioID string
	Step       int
	Playing    bool
}

// Recorder persists demo activity for later analysis.
type Recorder interface {
	RecordSession(s *Session) error
	RecordTierChange(evt *TierChange) error
	RecordPlaybackStep(evt *PlaybackStep) error
	Name() string
	Close() error
}
