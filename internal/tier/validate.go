package tier

import (
	"fmt"
	"math"

	"RoachSentinel/internal/model"
)

// SumTolerance is how far a distribution may drift from its total tax.
const SumTolerance = 0.01

// Violation is a configuration invariant that does not hold.
type Violation struct {
	TierID int
	Msg    string
}

func (v Violation) String() string {
	return fmt.Sprintf("tier %d: %s", v.TierID, v.Msg)
}

// Validate checks a tier table. Violations are diagnostics only; the table stays usable.
func Validate(table []model.Tier) []Violation {
	var out []Violation
	for i, t := range table {
		if t.ID != i+1 {
			out = append(out, Violation{t.ID, fmt.Sprintf("expected id %d at position %d", i+1, i)})
		}
		if d := t.Distribution.Buy.Total(); math.Abs(d-t.Taxes.Buy) > SumTolerance {
			out = append(out, Violation{t.ID, fmt.Sprintf("buy distribution %.2f != buy tax %.2f", d, t.Taxes.Buy)})
		}
		if d := t.Distribution.Sell.Total(); math.Abs(d-t.Taxes.Sell) > SumTolerance {
			out = append(out, Violation{t.ID, fmt.Sprintf("sell distribution %.2f != sell tax %.2f", d, t.Taxes.Sell)})
		}
		for _, pct := range []float64{t.Taxes.Buy, t.Taxes.Sell} {
			if pct < 0 || pct > 100 {
				out = append(out, Violation{t.ID, fmt.Sprintf("tax %.2f outside [0,100]", pct)})
			}
		}
		if _, err := StyleFor(t.Color); err != nil {
			out = append(out, Violation{t.ID, err.Error()})
		}
		switch {
		case !knownCondition(t.Condition):
			out = append(out, Violation{t.ID, fmt.Sprintf("unknown condition %q", t.Condition)})
		case Classify(ConditionRatio(t.Condition)) != i:
			out = append(out, Violation{t.ID, fmt.Sprintf("condition %q out of order at position %d", t.Condition, i)})
		}
	}
	return out
}

// knownCondition reports whether c is one of the ratio brackets that partition [0,inf).
func knownCondition(c string) bool {
	switch c {
	case CondBelow, CondEquilibrium, CondPressure, CondDefense, CondRecovery:
		return true
	}
	return false
}
