package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fitrush/fitrush/internal/audio"
	"github.com/fitrush/fitrush/internal/config"
	"github.com/fitrush/fitrush/internal/core"
	"github.com/fitrush/fitrush/internal/game"
	"github.com/fitrush/fitrush/internal/platform/tui"
	"github.com/fitrush/fitrush/internal/pose"
	"github.com/fitrush/fitrush/internal/signal"
	"github.com/fitrush/fitrush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagListen     string
	flagNoCamera   bool
	flagDemo       bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a session",
	Long: `Start a FitRush session in the given exercise mode.

Modes:
  squat     - Squat depth drives lift (default)
  armraise  - Arms above your head drive lift
  lunge     - Knee bend of either leg drives lift

Controls:
  Space      - Exert (keyboard fallback)
  1/2/3      - Select difficulty (tutorial screen)
  Enter      - Start the run
  R          - Retry (after game over)
  Esc/B      - Leave
  Q/Ctrl+C   - Quit

The pose stream is read from a WebSocket at --listen; open the
companion capture page in a browser to feed it. Without a camera, use
--no-camera and hold space, or --demo to watch a scripted workout.

Examples:
  fitrush play squat
  fitrush play lunge --difficulty hard
  fitrush play armraise --listen :9000
  fitrush play --no-camera
  fitrush play --demo`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagListen, "listen", ":8765", "WebSocket listen address for the pose stream")
	playCmd.Flags().BoolVar(&flagNoCamera, "no-camera", false, "Skip the pose stream, keyboard only")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Feed a scripted pose loop instead of a camera")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "fitrush"})

	mode := signal.ModeSquat
	if len(args) > 0 {
		m, err := signal.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Modes: squat, armraise, lunge")
			os.Exit(1)
		}
		mode = m
	}

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Pose input: scripted loop, live WebSocket stream, or nothing.
	var mailbox *pose.Mailbox
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch {
	case flagDemo:
		mailbox = pose.NewMailbox()
		go pose.RunScripted(ctx, mailbox, demoGenerator(mode), 33*time.Millisecond)
	case !flagNoCamera:
		mailbox = pose.NewMailbox()
		src := pose.NewWSSource(flagListen, mailbox)
		go func() {
			if srvErr := src.ListenAndServe(); srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
				logger.Error("pose stream server failed", "error", srvErr)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer shutdownCancel()
			//nolint:errcheck // Best-effort shutdown on exit
			src.Shutdown(shutdownCtx)
		}()
	}

	audioCfg := gameCfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	sounds, err := audio.New(audioCfg, logger)
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	g := game.New(mode, difficulty, gameCfg)
	runErr := tui.Run(g, mailbox, sounds, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// demoGenerator returns the scripted pose loop matching a mode.
func demoGenerator(mode signal.Mode) pose.Generator {
	const period = 3 * time.Second
	switch mode {
	case signal.ModeArmRaise:
		return pose.ArmRaiseCycle(period)
	case signal.ModeLunge:
		return pose.LungeCycle(period)
	default:
		return pose.SquatCycle(period)
	}
}
