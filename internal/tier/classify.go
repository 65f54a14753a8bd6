package tier

import "math"

// Ratio brackets. A ratio equal to a boundary belongs to the lower tier,
// except 0.8 which opens Equilibrium.
const (
	boundEquilibrium = 0.8
	boundPressure    = 1.2
	boundDefense     = 2.0
	boundRecovery    = 3.0
)

// Classify maps a sell/buy ratio to a 0-based tier index.
//
//	[0,0.8) -> 0, [0.8,1.2] -> 1, (1.2,2.0] -> 2, (2.0,3.0] -> 3, (3.0,inf) -> 4
//
// Negative and NaN ratios fall into the first tier.
func Classify(ratio float64) int {
	switch {
	case math.IsNaN(ratio) || ratio < boundEquilibrium:
		return 0
	case ratio <= boundPressure:
		return 1
	case ratio <= boundDefense:
		return 2
	case ratio <= boundRecovery:
		return 3
	default:
		return 4
	}
}

// ConditionRatio maps a condition label to the representative ratio the demo animates to.
// Unknown labels map to the equilibrium ratio.
func ConditionRatio(condition string) float64 {
	switch condition {
	case CondBelow:
		return 0.6
	case CondEquilibrium:
		return 1.0
	case CondPressure:
		return 1.6
	case CondDefense:
		return 2.5
	case CondRecovery:
		return 3.5
	default:
		return 1.0
	}
}

// DemoRatio returns the representative ratio of the tier at index.
func DemoRatio(index int) float64 {
	t, err := At(index)
	if err != nil {
		return ConditionRatio("")
	}
	return ConditionRatio(t.Condition)
}

// Progress maps a ratio to a 0-100 fill value for the pressure gauge.
func Progress(ratio float64) float64 {
	switch Classify(ratio) {
	case 0:
		return 15
	case 1:
		return 35
	case 2:
		return 55
	case 3:
		return 75
	default:
		return 90
	}
}
