package calculator

import (
	"errors"
	"math"
)

var errEmptySeries = errors.New("no data points provided")

// Range returns the high and low of a price-index series.
func Range(series []int) (high, low float64, err error) {
	if len(series) == 0 {
		return 0, 0, errEmptySeries
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, v := range series {
		f := float64(v)
		if f > high {
			high = f
		}
		if f < low {
			low = f
		}
	}
	return high, low, nil
}

// Change returns the percent move from the first point to the point at step (inclusive).
func Change(series []int, step int) (float64, error) {
	if len(series) == 0 {
		return 0, errEmptySeries
	}
	if series[0] == 0 {
		return 0, errors.New("series starts at zero")
	}
	step = clampStep(step, len(series))
	return float64(series[step]-series[0]) / float64(series[0]) * 100, nil
}

// MaxDrawdown returns the largest peak-to-trough decline, in percent, up to step.
func MaxDrawdown(series []int, step int) (float64, error) {
	if len(series) == 0 {
		return 0, errEmptySeries
	}
	step = clampStep(step, len(series))
	peak := float64(series[0])
	worst := 0.0
	for _, v := range series[:step+1] {
		f := float64(v)
		if f > peak {
			peak = f
		}
		if peak > 0 {
			if dd := (peak - f) / peak * 100; dd > worst {
				worst = dd
			}
		}
	}
	return worst, nil
}

// Position returns where the point at step sits within the series range (0.0~1.0).
func Position(series []int, step int) (float64, error) {
	high, low, err := Range(series)
	if err != nil {
		return 0, err
	}
	if high == low {
		return 0.5, nil
	}
	step = clampStep(step, len(series))
	return (float64(series[step]) - low) / (high - low), nil
}

func clampStep(step, n int) int {
	if step < 0 {
		return 0
	}
	if step >= n {
		return n - 1
	}
	return step
}
