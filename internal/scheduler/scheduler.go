package scheduler

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"RoachSentinel/internal/cycler"
	"RoachSentinel/internal/model"
	"RoachSentinel/internal/recorder"
	"RoachSentinel/internal/render"
	"RoachSentinel/internal/scenario"
	"RoachSentinel/internal/theme"
	"RoachSentinel/internal/ticker"
	"RoachSentinel/internal/tier"

	"github.com/robfig/cron/v3"
)

// Options configures the demo components the Scheduler owns.
type Options struct {
	SessionID        string
	CycleInterval    time.Duration
	PlaybackInterval time.Duration
	StartScenario    string
	Source           ticker.Source
}

// Scheduler owns the two demo state machines, the cron housekeeping jobs,
// and routes every state change to the renderer and recorder.
type Scheduler struct {
	Cron     *cron.Cron
	Cycler   *cycler.Cycler
	Playback *scenario.Playback
	Renderer *render.Renderer
	Theme    *theme.Source
	Recorder recorder.Recorder
	Ctx      context.Context

	sessionID   string
	startedAt   time.Time
	tierChanges atomic.Int64
	events      atomic.Int64
}

// NewScheduler creates a Scheduler and the Cycler and Playback it drives.
func NewScheduler(ctx context.Context, opts Options, rnd *render.Renderer, th *theme.Source, rec recorder.Recorder) (*Scheduler, error) {
	preset, err := scenario.Get(opts.StartScenario)
	if err != nil {
		return nil, fmt.Errorf("start scenario: %w", err)
	}
	src := opts.Source
	if src == nil {
		src = ticker.RealSource{}
	}
	s := &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Renderer:  rnd,
		Theme:     th,
		Recorder:  rec,
		Ctx:       ctx,
		sessionID: opts.SessionID,
		startedAt: time.Now(),
	}
	s.Cycler = cycler.New(src, opts.CycleInterval, s.onTierChange)
	s.Playback = scenario.NewPlayback(preset, src, opts.PlaybackInterval, s.onPlaybackChange)
	return s, nil
}

// RegisterAll registers the scenario rotation and summary jobs.
func (s *Scheduler) RegisterAll(rotateCron, summaryCron string) error {
	if _, err := s.Cron.AddFunc(rotateCron, s.rotateTask); err != nil {
		return fmt.Errorf("register rotate task: %w", err)
	}
	if _, err := s.Cron.AddFunc(summaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	return nil
}

// Start mounts the demo components and starts the cron scheduler.
func (s *Scheduler) Start() {
	if err := s.Recorder.RecordSession(&recorder.Session{
		ID:        s.sessionID,
		StartedAt: s.startedAt,
		Theme:     string(s.Theme.Current()),
		Scenario:  s.Playback.Preset().ID,
	}); err != nil {
		log.Printf("[ERROR] record session: %v", err)
	}
	s.Renderer.Cycler(s.Cycler.State())
	s.Cycler.Start(s.Ctx)
	s.Playback.Start(s.Ctx)
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron jobs, then unmounts the demo components.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Cycler.Close()
	s.Playback.Close()
	log.Println("[INFO] scheduler stopped")
}

// RunRotateNow switches to the next scenario and plays it immediately.
func (s *Scheduler) RunRotateNow() {
	s.rotateTask()
}

// Summary returns the current run digest.
func (s *Scheduler) Summary() render.Summary {
	return render.Summary{
		Session:        s.sessionID,
		Uptime:         time.Since(s.startedAt).Truncate(time.Second).String(),
		TierChanges:    int(s.tierChanges.Load()),
		PlaybackEvents: int(s.events.Load()),
		Cycler:         s.Cycler.State(),
		Playback:       s.Playback.State(),
		RecorderName:   s.Recorder.Name(),
	}
}

func (s *Scheduler) rotateTask() {
	next := scenario.Next(s.Playback.Preset().ID)
	log.Printf("[INFO] rotating scenario to %s", next.ID)
	s.Playback.Change(next)
	s.Playback.Play()
}

func (s *Scheduler) summaryTask() {
	s.Renderer.Text(render.FormatSummary(s.Summary()))
}

// HandleCommand processes a viewer command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(strings.ToLower(command))
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "p", "pause", "play":
		st := s.Cycler.Toggle()
		if st.IsPlaying {
			return "▶ showcase resumed"
		}
		return "⏸ showcase paused"
	case "1", "2", "3", "4", "5":
		id, _ := strconv.Atoi(fields[0])
		if _, err := s.Cycler.Select(id - 1); err != nil {
			return err.Error()
		}
		return ""
	case "r", "ratio":
		if len(fields) < 2 {
			return "usage: ratio <sell/buy>"
		}
		ratio, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || ratio < 0 || math.IsNaN(ratio) {
			return fmt.Sprintf("invalid ratio %q", fields[1])
		}
		idx := tier.Classify(ratio)
		t, _ := tier.At(idx)
		return fmt.Sprintf("ratio %.2f → tier %d %s %s", ratio, t.ID, t.Name, render.FormatGauge(ratio))
	case "s", "sim":
		if s.Playback.State().IsPlaying {
			s.Playback.Pause()
			return "⏸ simulation paused"
		}
		s.Playback.Play()
		return ""
	case "c", "scenario":
		if len(fields) < 2 {
			return "scenarios: " + strings.Join(scenario.IDs(), ", ")
		}
		p, err := scenario.Get(fields[1])
		if err != nil {
			return err.Error()
		}
		s.Playback.Change(p)
		return ""
	case "t", "theme":
		return fmt.Sprintf("theme: %s", s.Theme.Toggle())
	case "tiers":
		return render.FormatTierTable(tier.Table(), s.Renderer.Palette())
	case "status":
		return render.FormatSummary(s.Summary())
	default:
		return "commands:\n" +
			"  p            play/pause tier showcase\n" +
			"  1-5          pin a tier\n" +
			"  r <ratio>    classify a sell/buy ratio\n" +
			"  s            play/pause scenario simulation\n" +
			"  c <id>       switch scenario (" + strings.Join(scenario.IDs(), ", ") + ")\n" +
			"  t            toggle light/dark\n" +
			"  tiers        show tier table\n" +
			"  status       show run summary"
	}
}

func (s *Scheduler) onTierChange(st model.CyclerState, cause cycler.Cause) {
	if cause != cycler.CauseToggle {
		s.tierChanges.Add(1)
	}
	s.Renderer.Cycler(st)

	t, _ := tier.At(st.ActiveTierIndex)
	if err := s.Recorder.RecordTierChange(&recorder.TierChange{
		SessionID: s.sessionID,
		TierIndex: st.ActiveTierIndex,
		TierName:  t.Name,
		Ratio:     st.CurrentRatio,
		Playing:   st.IsPlaying,
		Source:    string(cause),
	}); err != nil {
		log.Printf("[ERROR] record tier change: %v", err)
	}
}

func (s *Scheduler) onPlaybackChange(st model.PlaybackState) {
	s.events.Add(1)
	preset, err := scenario.Get(st.ScenarioID)
	if err != nil {
		preset = s.Playback.Preset()
	}
	s.Renderer.Playback(preset, st)
	if err := s.Recorder.RecordPlaybackStep(&recorder.PlaybackStep{
		SessionID:  s.sessionID,
		ScenarioID: st.ScenarioID,
		Step:       st.SimulationStep,
		Playing:    st.IsPlaying,
	}); err != nil {
		log.Printf("[ERROR] record playback step: %v", err)
	}
}
