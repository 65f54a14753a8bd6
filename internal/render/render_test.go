package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/scenario"
	"RoachSentinel/internal/theme"
	"RoachSentinel/internal/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTierTable(t *testing.T) {
	out := FormatTierTable(tier.Table(), Palette{})
	for _, want := range []string{"Accumulation", "Recovery", "> 3.0", "10/3/2", "1/0.5/0.5", "15%"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[")
}

func TestPalette_Paint(t *testing.T) {
	light := Palette{Color: true, Mode: theme.Light}
	dark := Palette{Color: true, Mode: theme.Dark}
	assert.Equal(t, "\x1b[32mAcc\x1b[0m", light.Paint(model.ColorGreen, "Acc"))
	assert.Equal(t, "\x1b[92mAcc\x1b[0m", dark.Paint(model.ColorGreen, "Acc"))
	// Orange already uses a bright code.
	assert.Equal(t, "\x1b[91mDef\x1b[0m", dark.Paint(model.ColorOrange, "Def"))
	assert.Equal(t, "x", light.Paint("purple", "x"))
	assert.Equal(t, "x", Palette{}.Paint(model.ColorRed, "x"))
}

func TestFormatGauge(t *testing.T) {
	g := FormatGauge(0.6)
	assert.True(t, strings.HasPrefix(g, "[███░"), g)
	assert.Contains(t, g, "0.6x")
	assert.Equal(t, 18, strings.Count(FormatGauge(3.5), "█"))
}

func TestFormatTierCard(t *testing.T) {
	out := FormatTierCard(model.CyclerState{ActiveTierIndex: 3, CurrentRatio: 2.5, IsPlaying: false}, Palette{})
	assert.Contains(t, out, "⏸ Tier 4 · Defense (2.0 - 3.0)")
	assert.Contains(t, out, "Sell 12% → 8/2/2")

	bad := FormatTierCard(model.CyclerState{ActiveTierIndex: 9}, Palette{})
	assert.Contains(t, bad, "unknown tier")
}

func TestFormatScenario(t *testing.T) {
	p, err := scenario.Get(scenario.Crash)
	require.NoError(t, err)

	mid := FormatScenario(p, 3, Palette{})
	assert.Contains(t, mid, "day 3/8")
	assert.Contains(t, mid, "Roach · Recovery")
	assert.NotContains(t, mid, "✅")

	end := FormatScenario(p, 8, Palette{})
	assert.Contains(t, end, "-72.0%")
	assert.Contains(t, end, "5% of range")
	assert.Contains(t, end, "39% of range")
	assert.Contains(t, end, "✅")
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestFormatScenario_SparklinesAlignWithColour(t *testing.T) {
	p, err := scenario.Get(scenario.Selloff)
	require.NoError(t, err)

	out := FormatScenario(p, 4, Palette{Color: true, Mode: theme.Dark})
	require.Contains(t, out, "\x1b[")

	var cols []int
	for _, line := range strings.Split(out, "\n") {
		plain := ansiEscape.ReplaceAllString(line, "")
		if i := strings.IndexAny(plain, "▁▂▃▄▅▆▇█"); i >= 0 {
			cols = append(cols, utf8.RuneCountInString(plain[:i]))
		}
	}
	require.Len(t, cols, 2)
	assert.Equal(t, cols[0], cols[1])
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁█", Sparkline([]int{1, 9}, []int{1, 9}))
	assert.Equal(t, "██", Sparkline([]int{5, 5}, []int{5, 5}))
	assert.Equal(t, "", Sparkline([]int{1}, nil))
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(Summary{
		Session:        "abc",
		Uptime:         "1m0s",
		TierChanges:    3,
		PlaybackEvents: 8,
		Cycler:         model.CyclerState{ActiveTierIndex: 1, CurrentRatio: 1.0, IsPlaying: true},
		Playback:       model.PlaybackState{ScenarioID: "dip", SimulationStep: 8, Steps: 9},
		RecorderName:   "noop",
	})
	assert.Contains(t, out, "session abc")
	assert.Contains(t, out, "showcase: Equilibrium")
	assert.Contains(t, out, "scenario: dip day 8/8")
}

func TestRenderer_FollowsTheme(t *testing.T) {
	var buf bytes.Buffer
	th := theme.NewSource(theme.Light)
	r := NewRenderer(&buf, th, true)

	th.Set(theme.Dark)
	assert.Equal(t, theme.Dark, r.Palette().Mode)
	assert.Contains(t, buf.String(), "theme: dark")

	r.Close()
	th.Set(theme.Light)
	assert.Equal(t, theme.Dark, r.Palette().Mode)

	r.Cycler(model.CyclerState{ActiveTierIndex: 0, CurrentRatio: 0.6})
	assert.Contains(t, buf.String(), "Accumulation")
}
