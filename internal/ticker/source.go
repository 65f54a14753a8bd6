package ticker

import (
	"sync"
	"time"
)

// Ticker is the part of *time.Ticker a Loop needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Source creates tickers.
type Source interface {
	NewTicker(d time.Duration) Ticker
}

// RealSource is backed by time.NewTicker.
type RealSource struct{}

func (RealSource) NewTicker(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} }

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// acker is implemented by tickers that wait for a tick to be handled.
type acker interface {
	ack()
}

// ManualSource is deterministic and test-friendly: ticks happen only when Fire is called.
type ManualSource struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func NewManualSource() *ManualSource {
	return &ManualSource{}
}

func (m *ManualSource) NewTicker(d time.Duration) Ticker {
	t := &manualTicker{
		interval: d,
		c:        make(chan time.Time),
		handled:  make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	m.mu.Lock()
	m.tickers = append(m.tickers, t)
	m.mu.Unlock()
	return t
}

// Fire delivers one tick to every live ticker and waits until each has been
// handled. It returns the number of tickers that took the tick.
func (m *ManualSource) Fire() int {
	n := 0
	for _, t := range m.live() {
		select {
		case t.c <- time.Now():
		case <-t.stopped:
			continue
		}
		select {
		case <-t.handled:
			n++
		case <-t.stopped:
		}
	}
	return n
}

// Active counts tickers that have not been stopped.
func (m *ManualSource) Active() int {
	return len(m.live())
}

// Intervals lists the intervals of live tickers.
func (m *ManualSource) Intervals() []time.Duration {
	var out []time.Duration
	for _, t := range m.live() {
		out = append(out, t.interval)
	}
	return out
}

func (m *ManualSource) live() []*manualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tickers[:0]
	for _, t := range m.tickers {
		select {
		case <-t.stopped:
		default:
			kept = append(kept, t)
		}
	}
	m.tickers = kept
	return append([]*manualTicker(nil), kept...)
}

type manualTicker struct {
	interval time.Duration
	c        chan time.Time
	handled  chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

func (t *manualTicker) ack() {
	select {
	case t.handled <- struct{}{}:
	case <-t.stopped:
	}
}
