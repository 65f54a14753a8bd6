package model

// CyclerState is the observable state of the tier cycler.
type CyclerState struct {
	ActiveTierIndex int     `json:"active_tier_index"`
	CurrentRatio    float64 `json:"current_ratio"`
	IsPlaying       bool    `json:"is_playing"`
}

// PlaybackState is the observable state of a scenario playback.
type PlaybackState struct {
	ScenarioID     string `json:"scenario_id"`
	SimulationStep int    `json:"simulation_step"`
	Steps          int    `json:"steps"`
	IsPlaying      bool   `json:"is_playing"`
}

// Done reports whether the playback has reached its last step.
func (p PlaybackState) Done() bool {
	return p.Steps > 0 && p.SimulationStep >= p.Steps-1
}
