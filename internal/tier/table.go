package tier

import (
	"errors"
	"fmt"

	"RoachSentinel/internal/model"
)

// ErrUnknownTier is returned when a tier id or index is not in the table.
var ErrUnknownTier = errors.New("unknown tier")

// Condition labels, one per ratio bracket.
const (
	CondBelow       = "< 0.8"
	CondEquilibrium = "0.8 - 1.2"
	CondPressure    = "1.2 - 2.0"
	CondDefense     = "2.0 - 3.0"
	CondRecovery    = "> 3.0"
)

// tiers is the 5-level tax table, ordered by sell pressure.
var tiers = [...]model.Tier{
	{
		ID: 1, Name: "Accumulation", Condition: CondBelow, Color: model.ColorGreen,
		Description: "Buyers dominate. Low sell tax keeps the door open.",
		Taxes:       model.Taxes{Buy: 4, Sell: 6},
		Distribution: model.Distribution{
			Buy:  model.Split{Reflection: 2, Liquidity: 1, Marketing: 1},
			Sell: model.Split{Reflection: 3, Liquidity: 2, Marketing: 1},
		},
	},
	{
		ID: 2, Name: "Equilibrium", Condition: CondEquilibrium, Color: model.ColorBlue,
		Description: "Balanced flow. Standard taxes and rewards.",
		Taxes:       model.Taxes{Buy: 5, Sell: 7},
		Distribution: model.Distribution{
			Buy:  model.Split{Reflection: 2, Liquidity: 2, Marketing: 1},
			Sell: model.Split{Reflection: 4, Liquidity: 2, Marketing: 1},
		},
	},
	{
		ID: 3, Name: "Pressure", Condition: CondPressure, Color: model.ColorYellow,
		Description: "Sellers pick up. Sell tax rises, buy tax drops.",
		Taxes:       model.Taxes{Buy: 4, Sell: 9},
		Distribution: model.Distribution{
			Buy:  model.Split{Reflection: 2, Liquidity: 1, Marketing: 1},
			Sell: model.Split{Reflection: 6, Liquidity: 2, Marketing: 1},
		},
	},
	{
		ID: 4, Name: "Defense", Condition: CondDefense, Color: model.ColorOrange,
		Description: "Heavy selling. Holders earn more reflection from every exit.",
		Taxes:       model.Taxes{Buy: 3, Sell: 12},
		Distribution: model.Distribution{
			Buy:  model.Split{Reflection: 1, Liquidity: 1, Marketing: 1},
			Sell: model.Split{Reflection: 8, Liquidity: 2, Marketing: 2},
		},
	},
	{
		ID: 5, Name: "Recovery", Condition: CondRecovery, Color: model.ColorRed,
		Description: "Panic. Maximum sell tax funds holders, cheapest entry for buyers.",
		Taxes:       model.Taxes{Buy: 2, Sell: 15},
		Distribution: model.Distribution{
			Buy:  model.Split{Reflection: 1, Liquidity: 0.5, Marketing: 0.5},
			Sell: model.Split{Reflection: 10, Liquidity: 3, Marketing: 2},
		},
	},
}

// Len is the number of tiers.
func Len() int { return len(tiers) }

// Table returns a copy of the tier table.
func Table() []model.Tier {
	out := make([]model.Tier, len(tiers))
	copy(out, tiers[:])
	return out
}

// At returns the tier at a 0-based index.
func At(index int) (model.Tier, error) {
	if index < 0 || index >= len(tiers) {
		return model.Tier{}, fmt.Errorf("%w: index %d", ErrUnknownTier, index)
	}
	return tiers[index], nil
}

// ByID returns the tier with the given 1-based id.
func ByID(id int) (model.Tier, error) {
	for _, t := range tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Tier{}, fmt.Errorf("%w: id %d", ErrUnknownTier, id)
}
