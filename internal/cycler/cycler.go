// Package cycler drives the tier showcase: it steps through the tier table on
// a timer and lets the viewer pin a tier by hand.
package cycler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/ticker"
	"RoachSentinel/internal/tier"
)

// DefaultInterval is how long each tier stays on screen.
const DefaultInterval = 4 * time.Second

// InitialIndex is the tier shown on mount (Equilibrium).
const InitialIndex = 1

// ErrIndexOutOfRange is returned by Select for an index outside the tier table.
var ErrIndexOutOfRange = errors.New("tier index out of range")

// Cause says what produced a state change.
type Cause string

const (
	CauseTimer  Cause = "timer"
	CauseManual Cause = "manual"
	CauseToggle Cause = "toggle"
)

// Cycler is the tier showcase state machine.
type Cycler struct {
	mu       sync.Mutex
	state    model.CyclerState
	src      ticker.Source
	interval time.Duration
	onChange func(model.CyclerState, Cause)

	ctx    context.Context
	loop   *ticker.Loop
	gen    uint64 // bumped whenever the running loop is replaced or dropped
	seq    uint64 // bumped on every state change
	closed bool

	nmu      sync.Mutex
	notified uint64
}

// New creates a Cycler showing Equilibrium and playing. onChange may be nil;
// it is called outside the Cycler's lock after every state change, one call
// at a time. A change overtaken by a newer one before delivery is dropped.
// onChange must not call Tick, Select, Toggle or Close.
func New(src ticker.Source, interval time.Duration, onChange func(model.CyclerState, Cause)) *Cycler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Cycler{
		state: model.CyclerState{
			ActiveTierIndex: InitialIndex,
			CurrentRatio:    tier.DemoRatio(InitialIndex),
			IsPlaying:       true,
		},
		src:      src,
		interval: interval,
		onChange: onChange,
	}
}

// Start mounts the Cycler: while playing, the timer runs until Close or ctx ends.
func (c *Cycler) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.ctx != nil {
		return
	}
	c.ctx = ctx
	if c.state.IsPlaying {
		c.startLoopLocked()
	}
}

// Close unmounts the Cycler. No state change happens after Close returns.
// Must not be called from an onChange callback.
func (c *Cycler) Close() {
	c.mu.Lock()
	c.closed = true
	l := c.dropLoopLocked()
	c.mu.Unlock()
	if l != nil {
		l.Stop()
	}
}

// State returns a snapshot.
func (c *Cycler) State() model.CyclerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Tick advances to the next tier, wrapping after the last one. It does nothing while paused.
func (c *Cycler) Tick() model.CyclerState {
	c.mu.Lock()
	if c.closed || !c.state.IsPlaying {
		s := c.state
		c.mu.Unlock()
		return s
	}
	c.advanceLocked()
	s, seq := c.state, c.bumpLocked()
	c.mu.Unlock()
	c.notify(seq, s, CauseTimer)
	return s
}

// Select pins the tier at index and pauses the showcase.
func (c *Cycler) Select(index int) (model.CyclerState, error) {
	if index < 0 || index >= tier.Len() {
		return c.State(), fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.mu.Lock()
	if c.closed {
		s := c.state
		c.mu.Unlock()
		return s, nil
	}
	c.state.IsPlaying = false
	c.state.ActiveTierIndex = index
	c.state.CurrentRatio = tier.DemoRatio(index)
	l := c.dropLoopLocked()
	s, seq := c.state, c.bumpLocked()
	c.mu.Unlock()

	if l != nil {
		l.Cancel()
	}
	c.notify(seq, s, CauseManual)
	return s, nil
}

// Toggle flips play/pause. The active tier is kept; resuming restarts the interval.
func (c *Cycler) Toggle() model.CyclerState {
	c.mu.Lock()
	if c.closed {
		s := c.state
		c.mu.Unlock()
		return s
	}
	c.state.IsPlaying = !c.state.IsPlaying
	var old *ticker.Loop
	if c.state.IsPlaying {
		if c.ctx != nil {
			c.startLoopLocked()
		}
	} else {
		old = c.dropLoopLocked()
	}
	s, seq := c.state, c.bumpLocked()
	c.mu.Unlock()

	if old != nil {
		old.Cancel()
	}
	c.notify(seq, s, CauseToggle)
	return s
}

func (c *Cycler) advanceLocked() {
	next := (c.state.ActiveTierIndex + 1) % tier.Len()
	c.state.ActiveTierIndex = next
	c.state.CurrentRatio = tier.DemoRatio(next)
}

func (c *Cycler) startLoopLocked() {
	c.gen++
	gen := c.gen
	c.loop = ticker.Start(c.ctx, c.src, c.interval, func() bool {
		return c.timerTick(gen)
	})
}

func (c *Cycler) dropLoopLocked() *ticker.Loop {
	c.gen++
	l := c.loop
	c.loop = nil
	return l
}

// timerTick is the loop callback. A tick from a loop that has since been
// dropped is discarded.
func (c *Cycler) timerTick(gen uint64) bool {
	c.mu.Lock()
	if gen != c.gen || c.closed || !c.state.IsPlaying {
		c.mu.Unlock()
		return false
	}
	c.advanceLocked()
	s, seq := c.state, c.bumpLocked()
	c.mu.Unlock()
	c.notify(seq, s, CauseTimer)
	return true
}

func (c *Cycler) bumpLocked() uint64 {
	c.seq++
	return c.seq
}

// notify delivers change seq unless a later change has already been delivered.
func (c *Cycler) notify(seq uint64, s model.CyclerState, cause Cause) {
	if c.onChange == nil {
		return
	}
	c.nmu.Lock()
	defer c.nmu.Unlock()
	if seq <= c.notified {
		return
	}
	c.notified = seq
	c.onChange(s, cause)
}
