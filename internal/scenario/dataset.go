package scenario

import (
	"errors"
	"fmt"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/tier"
)

// ErrUnknownScenario is returned for a preset id that is not in the dataset.
var ErrUnknownScenario = errors.New("unknown scenario")

const (
	Stable  = "stable"
	Dip     = "dip"
	Selloff = "selloff"
	Crash   = "crash"
)

// presets are the market conditions shown in the scenario explorer, mildest first.
var presets = [...]model.ScenarioPreset{
	{
		ID: Stable, Label: "Stable Market", Icon: "⚖️",
		Description: "Buys and sells roughly balance out.",
		Roach: model.Comparison{
			Tier: 2, PriceImpact: "Minimal", RewardLevel: "Standard",
			Sentiment: "Calm", Outcome: "Steady reflections, price holds its range.",
		},
		Resilient: model.Comparison{
			PriceImpact: "Minimal", RewardLevel: "Flat",
			Sentiment: "Calm", Outcome: "Fixed tax, nothing changes.",
		},
		SimulationData: model.SimulationData{
			Roach:   []int{50, 52, 50, 51, 50, 49, 51, 52, 50},
			Typical: []int{50, 53, 49, 52, 48, 47, 50, 53, 49},
		},
	},
	{
		ID: Dip, Label: "Market Dip", Icon: "📉",
		Description: "A short wave of profit taking.",
		Roach: model.Comparison{
			Tier: 3, PriceImpact: "Moderate", RewardLevel: "Elevated",
			Sentiment: "Cautious", Outcome: "Higher sell tax slows the dip, holders earn more.",
		},
		Resilient: model.Comparison{
			PriceImpact: "Significant", RewardLevel: "Flat",
			Sentiment: "Nervous", Outcome: "Price slides with no counterweight.",
		},
		SimulationData: model.SimulationData{
			Roach:   []int{50, 48, 46, 45, 46, 47, 48, 49, 50},
			Typical: []int{50, 46, 42, 40, 39, 40, 41, 42, 43},
		},
	},
	{
		ID: Selloff, Label: "Heavy Selloff", Icon: "🔻",
		Description: "Sellers outnumber buyers two to one.",
		Roach: model.Comparison{
			Tier: 4, PriceImpact: "Cushioned", RewardLevel: "High",
			Sentiment: "Defensive", Outcome: "Defense tier redirects exits to holders.",
		},
		Resilient: model.Comparison{
			PriceImpact: "Severe", RewardLevel: "Flat",
			Sentiment: "Fearful", Outcome: "Liquidity drains, chart bleeds.",
		},
		SimulationData: model.SimulationData{
			Roach:   []int{50, 46, 42, 40, 39, 40, 42, 44, 45},
			Typical: []int{50, 42, 35, 30, 27, 26, 27, 28, 29},
		},
	},
	{
		ID: Crash, Label: "Market Crash", Icon: "💥",
		Description: "Panic selling across the market.",
		Roach: model.Comparison{
			Tier: 5, PriceImpact: "Absorbed", RewardLevel: "Maximum",
			Sentiment: "Opportunistic", Outcome: "Recovery tier pays holders and invites cheap entries.",
		},
		Resilient: model.Comparison{
			PriceImpact: "Catastrophic", RewardLevel: "Flat",
			Sentiment: "Panic", Outcome: "No mechanism to slow the fall.",
		},
		SimulationData: model.SimulationData{
			Roach:   []int{50, 42, 36, 33, 32, 33, 35, 37, 39},
			Typical: []int{50, 35, 24, 18, 14, 12, 12, 13, 14},
		},
	},
}

// Presets returns a copy of the dataset.
func Presets() []model.ScenarioPreset {
	out := make([]model.ScenarioPreset, len(presets))
	for i, p := range presets {
		out[i] = clonePreset(p)
	}
	return out
}

// IDs lists preset ids in display order.
func IDs() []string {
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.ID
	}
	return ids
}

// Get returns the preset with the given id.
func Get(id string) (model.ScenarioPreset, error) {
	for _, p := range presets {
		if p.ID == id {
			return clonePreset(p), nil
		}
	}
	return model.ScenarioPreset{}, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
}

// Next returns the preset after id, wrapping to the first.
func Next(id string) model.ScenarioPreset {
	for i, p := range presets {
		if p.ID == id {
			return clonePreset(presets[(i+1)%len(presets)])
		}
	}
	return clonePreset(presets[0])
}

// RoachTier resolves the tier a preset's roach side runs in.
func RoachTier(p model.ScenarioPreset) (model.Tier, error) {
	return tier.ByID(p.Roach.Tier)
}

// Validate checks the dataset invariants and returns every problem found.
func Validate(ps []model.ScenarioPreset) []error {
	var errs []error
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("scenario %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if _, err := RoachTier(p); err != nil {
			errs = append(errs, fmt.Errorf("scenario %q: %w", p.ID, err))
		}
		d := p.SimulationData
		if len(d.Roach) == 0 {
			errs = append(errs, fmt.Errorf("scenario %q: empty simulation data", p.ID))
		}
		if len(d.Roach) != len(d.Typical) {
			errs = append(errs, fmt.Errorf("scenario %q: roach has %d points, typical has %d", p.ID, len(d.Roach), len(d.Typical)))
		}
	}
	return errs
}

func clonePreset(p model.ScenarioPreset) model.ScenarioPreset {
	p.SimulationData.Roach = append([]int(nil), p.SimulationData.Roach...)
	p.SimulationData.Typical = append([]int(nil), p.SimulationData.Typical...)
	return p
}
