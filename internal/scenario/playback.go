package scenario

import (
	"context"
	"sync"
	"time"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/ticker"
)

// DefaultStepInterval is the time between simulated days.
const DefaultStepInterval = 800 * time.Millisecond

// Playback steps through a preset's simulation data once, from day 0 to the last day.
type Playback struct {
	mu       sync.Mutex
	preset   model.ScenarioPreset
	step     int
	playing  bool
	src      ticker.Source
	interval time.Duration
	onChange func(model.PlaybackState)

	ctx    context.Context
	loop   *ticker.Loop
	gen    uint64
	seq    uint64
	closed bool

	nmu      sync.Mutex
	notified uint64
}

// NewPlayback creates a stopped playback at step 0. onChange may be nil; it
// is called one change at a time and never with a change older than the
// last one delivered. It must not call back into the Playback's mutators.
func NewPlayback(preset model.ScenarioPreset, src ticker.Source, interval time.Duration, onChange func(model.PlaybackState)) *Playback {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	return &Playback{
		preset:   preset,
		src:      src,
		interval: interval,
		onChange: onChange,
	}
}

// Start mounts the playback. Timers started by Play are bound to ctx.
func (p *Playback) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.ctx != nil {
		return
	}
	p.ctx = ctx
	if p.playing {
		p.startLoopLocked()
	}
}

// Close unmounts the playback and waits for its timer to exit.
// Must not be called from an onChange callback.
func (p *Playback) Close() {
	p.mu.Lock()
	p.closed = true
	p.playing = false
	l := p.dropLoopLocked()
	p.mu.Unlock()
	if l != nil {
		l.Stop()
	}
}

// State returns a snapshot.
func (p *Playback) State() model.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Preset returns the preset being played.
func (p *Playback) Preset() model.ScenarioPreset {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preset
}

// Play starts playback, rewinding first if the last day has been reached.
func (p *Playback) Play() model.PlaybackState {
	p.mu.Lock()
	n := p.preset.SimulationData.Len()
	if p.closed || n == 0 || p.playing {
		s := p.stateLocked()
		p.mu.Unlock()
		return s
	}
	if p.step >= n-1 {
		p.step = 0
	}
	p.playing = true
	if p.ctx != nil {
		p.startLoopLocked()
	}
	s, seq := p.stateLocked(), p.bumpLocked()
	p.mu.Unlock()
	p.notify(seq, s)
	return s
}

// Pause stops playback where it is.
func (p *Playback) Pause() model.PlaybackState {
	p.mu.Lock()
	if p.closed || !p.playing {
		s := p.stateLocked()
		p.mu.Unlock()
		return s
	}
	p.playing = false
	l := p.dropLoopLocked()
	s, seq := p.stateLocked(), p.bumpLocked()
	p.mu.Unlock()

	if l != nil {
		l.Cancel()
	}
	p.notify(seq, s)
	return s
}

// Tick moves one day forward and stops on the last day. It does nothing while paused.
func (p *Playback) Tick() model.PlaybackState {
	p.mu.Lock()
	if p.closed || !p.playing {
		s := p.stateLocked()
		p.mu.Unlock()
		return s
	}
	var l *ticker.Loop
	if !p.advanceLocked() {
		l = p.dropLoopLocked()
	}
	s, seq := p.stateLocked(), p.bumpLocked()
	p.mu.Unlock()

	if l != nil {
		l.Cancel()
	}
	p.notify(seq, s)
	return s
}

// Change switches to another preset and rewinds. Playback is always stopped afterwards.
func (p *Playback) Change(preset model.ScenarioPreset) model.PlaybackState {
	p.mu.Lock()
	if p.closed {
		s := p.stateLocked()
		p.mu.Unlock()
		return s
	}
	p.preset = preset
	p.step = 0
	p.playing = false
	l := p.dropLoopLocked()
	s, seq := p.stateLocked(), p.bumpLocked()
	p.mu.Unlock()

	if l != nil {
		l.Cancel()
	}
	p.notify(seq, s)
	return s
}

// advanceLocked steps forward and reports whether playback continues.
func (p *Playback) advanceLocked() bool {
	last := p.preset.SimulationData.Len() - 1
	p.step++
	if p.step >= last {
		p.step = max(last, 0)
		p.playing = false
	}
	return p.playing
}

func (p *Playback) stateLocked() model.PlaybackState {
	return model.PlaybackState{
		ScenarioID:     p.preset.ID,
		SimulationStep: p.step,
		Steps:          p.preset.SimulationData.Len(),
		IsPlaying:      p.playing,
	}
}

func (p *Playback) startLoopLocked() {
	p.gen++
	gen := p.gen
	p.loop = ticker.Start(p.ctx, p.src, p.interval, func() bool {
		return p.timerTick(gen)
	})
}

func (p *Playback) dropLoopLocked() *ticker.Loop {
	p.gen++
	l := p.loop
	p.loop = nil
	return l
}

func (p *Playback) timerTick(gen uint64) bool {
	p.mu.Lock()
	if gen != p.gen || p.closed || !p.playing {
		p.mu.Unlock()
		return false
	}
	more := p.advanceLocked()
	if !more {
		// The loop exits on its own once we return false.
		p.gen++
		p.loop = nil
	}
	s, seq := p.stateLocked(), p.bumpLocked()
	p.mu.Unlock()
	p.notify(seq, s)
	return more
}

func (p *Playback) bumpLocked() uint64 {
	p.seq++
	return p.seq
}

func (p *Playback) notify(seq uint64, s model.PlaybackState) {
	if p.onChange == nil {
		return
	}
	p.nmu.Lock()
	defer p.nmu.Unlock()
	if seq <= p.notified {
		return
	}
	p.notified = seq
	p.onChange(s)
}
