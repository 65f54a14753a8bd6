package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"os/signal"
	"syscall"
	"time"

	"RoachSentinel/internal/config"
	"RoachSentinel/internal/recorder"
	"RoachSentinel/internal/render"
	"RoachSentinel/internal/scheduler"
	"RoachSentinel/internal/theme"
	"RoachSentinel/internal/ticker"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runFor is the run --for flag value
var runFor time.Duration

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the animated demo until interrupted",
	Long: `Run the tier showcase and scenario simulation. Type "help" and press
enter for the list of commands. Stops on Ctrl+C, SIGTERM, or after --for.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().DurationVar(&runFor, "for", 0, "Stop after this long (0 runs until interrupted)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	log.Println("[INFO] RoachSentinel demo starting...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	checkTables()

	mode, err := theme.ParseMode(cfg.Display.Theme)
	if err != nil {
		return err
	}
	th := theme.NewSource(mode)
	rnd := render.NewRenderer(cmd.OutOrStdout(), th, cfg.Display.Color)
	defer rnd.Close()

	rec := openRecorder(cfg)
	defer rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.NewString()
	log.Printf("[INFO] session %s, recorder: %s", sessionID, rec.Name())

	sched, err := scheduler.NewScheduler(ctx, scheduler.Options{
		SessionID:        sessionID,
		CycleInterval:    cfg.Demo.CycleInterval,
		PlaybackInterval: cfg.Demo.PlaybackInterval,
		StartScenario:    cfg.Demo.StartScenario,
		Source:           ticker.RealSource{},
	}, rnd, th, rec)
	if err != nil {
		return err
	}
	if err := sched.RegisterAll(cfg.Schedule.RotateCron, cfg.Schedule.SummaryCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Demo.Autoplay {
		sched.Playback.Play()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return handleCommands(gctx, cmd.InOrStdin(), sched, rnd)
	})
	g.Go(func() error {
		if runFor <= 0 {
			<-gctx.Done()
			return nil
		}
		select {
		case <-gctx.Done():
		case <-time.After(runFor):
			log.Printf("[INFO] --for %s elapsed", runFor)
			stop()
		}
		return nil
	})

	log.Println("[INFO] demo is running. Press Ctrl+C to stop.")
	err = g.Wait()
	log.Println("[INFO] shutdown signal received, stopping...")
	return err
}

func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

// handleCommands feeds viewer input to the scheduler until ctx ends.
// End of input only stops reading; the demo keeps running.
func handleCommands(ctx context.Context, in io.Reader, sched *scheduler.Scheduler, rnd *render.Renderer) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Printf("[WARN] read commands: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			log.Printf("[INFO] received command: %s", line)
			if reply := sched.HandleCommand(line); reply != "" {
				rnd.Text(reply)
			}
		}
	}
}

