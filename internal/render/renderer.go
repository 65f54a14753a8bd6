package render

import (
	"fmt"
	"io"
	"sync"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/theme"
)

// Renderer writes frames to a terminal. It follows the theme it was given.
type Renderer struct {
	mu    sync.Mutex
	w     io.Writer
	pal   Palette
	unsub func()
}

// NewRenderer subscribes to th; call Close to unsubscribe.
func NewRenderer(w io.Writer, th *theme.Source, color bool) *Renderer {
	r := &Renderer{w: w, pal: Palette{Color: color, Mode: th.Current()}}
	r.unsub = th.Subscribe(func(m theme.Mode) {
		r.mu.Lock()
		r.pal.Mode = m
		r.mu.Unlock()
		r.write(fmt.Sprintf("🎨 theme: %s\n", m))
	})
	return r
}

// Palette returns the palette in effect.
func (r *Renderer) Palette() Palette {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pal
}

// Cycler draws a tier showcase frame.
func (r *Renderer) Cycler(s model.CyclerState) {
	r.write(FormatTierCard(s, r.Palette()))
}

// Playback draws a scenario frame.
func (r *Renderer) Playback(p model.ScenarioPreset, s model.PlaybackState) {
	r.write(FormatScenario(p, s.SimulationStep, r.Palette()))
}

// Text writes a raw line.
func (r *Renderer) Text(s string) {
	r.write(s)
}

// Close stops following the theme.
func (r *Renderer) Close() {
	r.unsub()
}

func (r *Renderer) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, s+"\n")
}
