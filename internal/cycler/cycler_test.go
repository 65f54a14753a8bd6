package cycler

import (
	"context"
	"sync"
	"testing"
	"time"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/ticker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeLog struct {
	mu     sync.Mutex
	states []model.CyclerState
	causes []Cause
}

func (l *changeLog) add(s model.CyclerState, c Cause) {
	l.mu.Lock()
	l.states = append(l.states, s)
	l.causes = append(l.causes, c)
	l.mu.Unlock()
}

func (l *changeLog) last() model.CyclerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.states[len(l.states)-1]
}

func (l *changeLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.states)
}

func TestNew_InitialState(t *testing.T) {
	c := New(ticker.NewManualSource(), 0, nil)
	s := c.State()
	assert.Equal(t, 1, s.ActiveTierIndex)
	assert.Equal(t, 1.0, s.CurrentRatio)
	assert.True(t, s.IsPlaying)
	assert.Equal(t, DefaultInterval, c.interval)
}

func TestTick_AdvancesAndRecomputesRatio(t *testing.T) {
	c := New(ticker.NewManualSource(), DefaultInterval, nil)
	want := []struct {
		index int
		ratio float64
	}{
		{2, 1.6}, {3, 2.5}, {4, 3.5}, {0, 0.6}, {1, 1.0},
	}
	for _, w := range want {
		s := c.Tick()
		assert.Equal(t, w.index, s.ActiveTierIndex)
		assert.Equal(t, w.ratio, s.CurrentRatio)
	}
}

func TestTick_WrapsFromLastTier(t *testing.T) {
	c := New(ticker.NewManualSource(), DefaultInterval, nil)
	_, err := c.Select(4)
	require.NoError(t, err)
	c.Toggle()
	require.True(t, c.State().IsPlaying)

	s := c.Tick()
	assert.Equal(t, 0, s.ActiveTierIndex)
	assert.Equal(t, 0.6, s.CurrentRatio)
}

func TestTick_NoopWhilePaused(t *testing.T) {
	c := New(ticker.NewManualSource(), DefaultInterval, nil)
	c.Toggle()
	s := c.Tick()
	assert.Equal(t, 1, s.ActiveTierIndex)
	assert.False(t, s.IsPlaying)
}

func TestSelect_IdempotentFromAnyState(t *testing.T) {
	for start := 0; start < 5; start++ {
		for _, playing := range []bool{true, false} {
			c := New(ticker.NewManualSource(), DefaultInterval, nil)
			c.state.ActiveTierIndex = start
			c.state.IsPlaying = playing

			s, err := c.Select(2)
			require.NoError(t, err)
			assert.Equal(t, 2, s.ActiveTierIndex)
			assert.Equal(t, 1.6, s.CurrentRatio)
			assert.False(t, s.IsPlaying)

			s, err = c.Select(2)
			require.NoError(t, err)
			assert.Equal(t, model.CyclerState{ActiveTierIndex: 2, CurrentRatio: 1.6}, s)
		}
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	c := New(ticker.NewManualSource(), DefaultInterval, nil)
	for _, idx := range []int{-1, 5} {
		s, err := c.Select(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 1, s.ActiveTierIndex)
		assert.True(t, s.IsPlaying)
	}
}

func TestToggle_KeepsIndex(t *testing.T) {
	c := New(ticker.NewManualSource(), DefaultInterval, nil)
	c.Tick()
	s := c.Toggle()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, 2, s.ActiveTierIndex)
	s = c.Toggle()
	assert.True(t, s.IsPlaying)
	assert.Equal(t, 2, s.ActiveTierIndex)
}

func TestTimer_DrivesTicks(t *testing.T) {
	src := ticker.NewManualSource()
	var log changeLog
	c := New(src, DefaultInterval, log.add)
	c.Start(context.Background())
	defer c.Close()

	require.Equal(t, 1, src.Fire())
	require.Equal(t, 1, src.Fire())
	assert.Equal(t, 3, c.State().ActiveTierIndex)
	assert.Equal(t, 2, log.len())
	assert.Equal(t, []time.Duration{DefaultInterval}, src.Intervals())
}

func TestTimer_PauseCancelsTimer(t *testing.T) {
	src := ticker.NewManualSource()
	var log changeLog
	c := New(src, DefaultInterval, log.add)
	c.Start(context.Background())
	defer c.Close()

	c.Toggle()
	before := c.State()
	n := log.len()

	for i := 0; i < 3; i++ {
		src.Fire()
	}
	assert.Equal(t, before, c.State())
	assert.Equal(t, n, log.len())
	assert.Eventually(t, func() bool { return src.Active() == 0 }, time.Second, time.Millisecond)
}

func TestTimer_ResumeStartsSingleTimer(t *testing.T) {
	src := ticker.NewManualSource()
	c := New(src, DefaultInterval, nil)
	c.Start(context.Background())
	defer c.Close()

	for i := 0; i < 4; i++ {
		c.Toggle()
	}
	assert.Eventually(t, func() bool { return src.Active() == 1 }, time.Second, time.Millisecond)

	idx := c.State().ActiveTierIndex
	require.Equal(t, 1, src.Fire())
	assert.Equal(t, (idx+1)%5, c.State().ActiveTierIndex)
}

func TestTimer_SelectStopsTimer(t *testing.T) {
	src := ticker.NewManualSource()
	c := New(src, DefaultInterval, nil)
	c.Start(context.Background())
	defer c.Close()

	_, err := c.Select(3)
	require.NoError(t, err)
	src.Fire()
	assert.Equal(t, 3, c.State().ActiveTierIndex)
}

func TestClose_NoMutationsAfterUnmount(t *testing.T) {
	src := ticker.NewManualSource()
	var log changeLog
	c := New(src, DefaultInterval, log.add)
	c.Start(context.Background())
	src.Fire()

	c.Close()
	before := c.State()
	n := log.len()

	assert.Equal(t, 0, src.Active())
	assert.Equal(t, 0, src.Fire())
	c.Tick()
	c.Toggle()
	_, _ = c.Select(0)
	assert.Equal(t, before, c.State())
	assert.Equal(t, n, log.len())
}

func TestStart_ContextCancelStopsTimer(t *testing.T) {
	src := ticker.NewManualSource()
	ctx, cancel := context.WithCancel(context.Background())
	c := New(src, DefaultInterval, nil)
	c.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool { return src.Active() == 0 }, time.Second, time.Millisecond)
	assert.Equal(t, 1, c.State().ActiveTierIndex)
	c.Close()
}

func TestOnChange_ReportsCause(t *testing.T) {
	src := ticker.NewManualSource()
	var log changeLog
	c := New(src, DefaultInterval, log.add)
	c.Start(context.Background())
	defer c.Close()

	require.Equal(t, 1, src.Fire())
	_, err := c.Select(2)
	require.NoError(t, err)
	_, err = c.Select(2) // already pinned there, still a manual pick
	require.NoError(t, err)
	c.Toggle()
	c.Tick()

	assert.Equal(t, []Cause{CauseTimer, CauseManual, CauseManual, CauseToggle, CauseTimer}, log.causes)
}

func TestNotify_DropsOvertakenChange(t *testing.T) {
	var log changeLog
	c := New(ticker.NewManualSource(), DefaultInterval, log.add)

	newer := model.CyclerState{ActiveTierIndex: 3, CurrentRatio: 2.5}
	older := model.CyclerState{ActiveTierIndex: 2, CurrentRatio: 1.6, IsPlaying: true}
	c.notify(2, newer, CauseManual)
	c.notify(1, older, CauseTimer)

	assert.Equal(t, []model.CyclerState{newer}, log.states)
	assert.Equal(t, []Cause{CauseManual}, log.causes)
}

func TestNotify_LastDeliveredMatchesState(t *testing.T) {
	src := ticker.NewManualSource()
	var log changeLog
	c := New(src, DefaultInterval, log.add)
	c.Start(context.Background())
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			src.Fire()
		}
	}()
	for i := 0; i < 50; i++ {
		_, _ = c.Select(i % 5)
		c.Toggle()
	}
	<-done

	assert.Equal(t, c.State(), log.last())
}
