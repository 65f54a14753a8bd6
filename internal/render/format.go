package render

import (
	"fmt"
	"strings"

	"RoachSentinel/internal/calculator"
	"RoachSentinel/internal/model"
	"RoachSentinel/internal/theme"
	"RoachSentinel/internal/tier"
)

const gaugeWidth = 20

// Palette decides whether and how text is coloured.
type Palette struct {
	Color bool
	Mode  theme.Mode
}

// Paint wraps text in the tier colour for the current mode.
func (p Palette) Paint(tag model.ColorTag, text string) string {
	if !p.Color {
		return text
	}
	st, err := tier.StyleFor(tag)
	if err != nil {
		return text
	}
	code := st.ANSI
	if p.Mode == theme.Dark && code < 90 {
		code += 60 // bright variant
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, text)
}

// FormatTierTable renders the full tax table.
func FormatTierTable(table []model.Tier, pal Palette) string {
	var b strings.Builder
	b.WriteString("🪳 Roach dynamic tax tiers\n\n")
	b.WriteString(fmt.Sprintf("%-3s %-13s %-10s %5s %5s  %-16s %-16s\n",
		"#", "Tier", "Sell/Buy", "Buy", "Sell", "Buy R/L/M", "Sell R/L/M"))
	for _, t := range table {
		name := pal.Paint(t.Color, fmt.Sprintf("%-13s", t.Name))
		b.WriteString(fmt.Sprintf("%-3d %s %-10s %4.0f%% %4.0f%%  %-16s %-16s\n",
			t.ID, name, t.Condition, t.Taxes.Buy, t.Taxes.Sell,
			formatSplit(t.Distribution.Buy), formatSplit(t.Distribution.Sell)))
	}
	return b.String()
}

// FormatGauge renders the sell-pressure gauge for a ratio.
func FormatGauge(ratio float64) string {
	fill := int(tier.Progress(ratio) / 100 * gaugeWidth)
	return fmt.Sprintf("[%s%s] %.1fx", strings.Repeat("█", fill), strings.Repeat("░", gaugeWidth-fill), ratio)
}

// FormatTierCard renders the tier the showcase is on.
func FormatTierCard(s model.CyclerState, pal Palette) string {
	t, err := tier.At(s.ActiveTierIndex)
	if err != nil {
		return fmt.Sprintf("tier index %d: %v\n", s.ActiveTierIndex, err)
	}
	var b strings.Builder
	status := "▶"
	if !s.IsPlaying {
		status = "⏸"
	}
	b.WriteString(fmt.Sprintf("%s Tier %d · %s (%s)\n", status, t.ID, pal.Paint(t.Color, t.Name), t.Condition))
	b.WriteString(fmt.Sprintf("   Pressure %s\n", FormatGauge(s.CurrentRatio)))
	b.WriteString(fmt.Sprintf("   Buy %.0f%% → %s\n", t.Taxes.Buy, formatSplit(t.Distribution.Buy)))
	b.WriteString(fmt.Sprintf("   Sell %.0f%% → %s\n", t.Taxes.Sell, formatSplit(t.Distribution.Sell)))
	if t.Description != "" {
		b.WriteString(fmt.Sprintf("   %s\n", t.Description))
	}
	return b.String()
}

// FormatScenario renders a scenario comparison up to the given day.
func FormatScenario(p model.ScenarioPreset, step int, pal Palette) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s | day %d/%d\n", p.Icon, p.Label, step, max(p.SimulationData.Len()-1, 0)))
	if p.Description != "" {
		b.WriteString(fmt.Sprintf("   %s\n", p.Description))
	}

	tagline, tag := "Roach", model.ColorTag("")
	if t, err := tier.ByID(p.Roach.Tier); err == nil {
		tagline, tag = "Roach · "+t.Name, t.Color
	}
	b.WriteString(seriesLine(tagline, tag, pal, p.SimulationData.Roach, step))
	b.WriteString(seriesLine("Typical", "", pal, p.SimulationData.Typical, step))

	b.WriteString(fmt.Sprintf("   impact: %s vs %s | rewards: %s vs %s\n",
		p.Roach.PriceImpact, p.Resilient.PriceImpact, p.Roach.RewardLevel, p.Resilient.RewardLevel))
	if step >= p.SimulationData.Len()-1 {
		b.WriteString(fmt.Sprintf("   ✅ %s\n", p.Roach.Outcome))
	}
	return b.String()
}

// Summary is a point-in-time digest of a demo run.
type Summary struct {
	Session        string
	Uptime         string
	TierChanges    int
	PlaybackEvents int
	Cycler         model.CyclerState
	Playback       model.PlaybackState
	RecorderName   string
}

// FormatSummary renders the periodic run digest.
func FormatSummary(s Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 demo summary | session %s | up %s\n", s.Session, s.Uptime))
	b.WriteString(fmt.Sprintf("   tier changes: %d | playback events: %d | recorder: %s\n", s.TierChanges, s.PlaybackEvents, s.RecorderName))
	if t, err := tier.At(s.Cycler.ActiveTierIndex); err == nil {
		b.WriteString(fmt.Sprintf("   showcase: %s (%.1fx, playing=%v)\n", t.Name, s.Cycler.CurrentRatio, s.Cycler.IsPlaying))
	}
	b.WriteString(fmt.Sprintf("   scenario: %s day %d/%d (playing=%v)\n",
		s.Playback.ScenarioID, s.Playback.SimulationStep, max(s.Playback.Steps-1, 0), s.Playback.IsPlaying))
	return b.String()
}

// seriesLine pads the label before painting so escapes do not eat into the column.
func seriesLine(label string, tag model.ColorTag, pal Palette, series []int, step int) string {
	shown := series
	if step+1 < len(series) {
		shown = series[:max(step+1, 0)]
	}
	line := fmt.Sprintf("   %s %s", pal.Paint(tag, fmt.Sprintf("%-22s", label)), Sparkline(shown, series))
	if chg, err := calculator.Change(series, step); err == nil {
		dd, _ := calculator.MaxDrawdown(series, step)
		pos, _ := calculator.Position(series, step)
		line += fmt.Sprintf("  %+.1f%% (max dd %.1f%%, %.0f%% of range)", chg, dd, pos*100)
	}
	return line + "\n"
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws points scaled to the range of ref.
func Sparkline(points, ref []int) string {
	high, low, err := calculator.Range(ref)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, v := range points {
		idx := len(sparkRunes) - 1
		if high > low {
			idx = int((float64(v) - low) / (high - low) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func formatSplit(s model.Split) string {
	return fmt.Sprintf("%g/%g/%g", s.Reflection, s.Liquidity, s.Marketing)
}
