package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stickman-seasons/internal/audio"
	"github.com/vovakirdan/stickman-seasons/internal/core"
	"github.com/vovakirdan/stickman-seasons/internal/games/seasons"
	"github.com/vovakirdan/stickman-seasons/internal/platform/tui"
)

var errNoTerminal = errors.New("stdout is not a terminal")

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play straight away",
	Long: `Start a game without the menu.

Controls:
  Arrows/WASD/HJKL  - Steer the stickman
  Mouse drag        - Steer towards the pointer
  P/Space           - Pause
  Esc/B             - Pause, then back to menu
  R/Enter           - Restart (after game over)
  M                 - Sound on/off
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower world, longer shield
  normal - Default tuning
  hard   - Two lives, ramping difficulty
  fixed  - No ramp at all

Examples:
  seasons play
  seasons play --level 9
  seasons play --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, fmt.Sprintf("Start level (1-%d)", seasons.LevelCount))
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := seasons.LevelAt(flagLevel - 1); err != nil {
		return fmt.Errorf("--level %d: %w", flagLevel, err)
	}
	return runSession(flagLevel - 1)
}

// runSession starts a local session. A negative level opens the menu.
func runSession(level int) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	dispatcher := audio.NewDispatcher(openSink(), logger)
	dispatcher.SetMuted(flagMute)
	defer dispatcher.Close()

	err = tui.Run(tui.Options{
		Runtime:    cfg,
		StartLevel: level,
		Audio:      dispatcher,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// runtimeConfig reads the terminal size. Startup fails without a terminal
// that can hold the play field.
func runtimeConfig() (core.RuntimeConfig, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return core.RuntimeConfig{}, errNoTerminal
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return core.RuntimeConfig{}, fmt.Errorf("get terminal size: %w", err)
	}
	if width < tui.MinWidth || height < tui.MinHeight {
		return core.RuntimeConfig{}, fmt.Errorf("terminal is %dx%d, need at least %dx%d",
			width, height, tui.MinWidth, tui.MinHeight)
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}

// openSink opens the speaker, or falls back to silence.
func openSink() audio.Sink {
	if flagMute {
		return audio.Null{}
	}
	synth, err := audio.NewSynth(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Null{}
	}
	return synth
}
