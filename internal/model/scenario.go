package model

// Comparison is one side of a scenario's roach-vs-typical comparison card.
type Comparison struct {
	Tier        int    `json:"tier,omitempty" yaml:"tier,omitempty"` // roach only
	PriceImpact string `json:"price_impact" yaml:"price_impact"`
	RewardLevel string `json:"reward_level" yaml:"reward_level"`
	Sentiment   string `json:"sentiment" yaml:"sentiment"`
	Outcome     string `json:"outcome" yaml:"outcome"`
}

// SimulationData holds the day-by-day price index of both tokens.
type SimulationData struct {
	Roach   []int `json:"roach" yaml:"roach"`
	Typical []int `json:"typical" yaml:"typical"`
}

// Len is the number of simulated days.
func (d SimulationData) Len() int {
	return len(d.Roach)
}

// ScenarioPreset is one illustrative market condition.
type ScenarioPreset struct {
	ID             string         `json:"id" yaml:"id"`
	Label          string         `json:"label" yaml:"label"`
	Icon           string         `json:"icon" yaml:"icon"`
	Description    string         `json:"description" yaml:"description"`
	Roach          Comparison     `json:"roach" yaml:"roach"`
	Resilient      Comparison     `json:"resilient" yaml:"resilient"`
	SimulationData SimulationData `json:"simulation_data" yaml:"simulation_data"`
}
