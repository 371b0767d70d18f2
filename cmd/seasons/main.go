// seasons is a terminal arcade game: a stickman falls through the seasons,
// dodging balloons and collecting keys.
//
// Usage:
//
//	seasons                  - Start the main menu
//	seasons menu             - Start the main menu
//	seasons play             - Play straight away
//	seasons levels           - List the levels
//	seasons serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Start without sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickman-seasons/internal/config"
	"github.com/vovakirdan/stickman-seasons/internal/games/seasons"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
	flagVolume     float64
)

// logger is set up by the root command before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Stickman Seasons - fall through the seasons in your terminal",
	Long: `Stickman Seasons is a terminal arcade game. Steer a falling stickman
past balloons, collect keys to unlock the next season and grab the gift
for a shield.

Available commands:
  menu     - Interactive main menu (default)
  play     - Start a game straight away
  levels   - Show all levels
  serve    - Start SSH server for remote play

Examples:
  seasons
  seasons play --level 5
  seasons play --difficulty hard
  seasons serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup opens the log, loads the config and hands it to the game factory.
func setup(_ *cobra.Command, _ []string) error {
	if err := setupLogger(); err != nil {
		return err
	}

	cfg, err := config.LoadSeasons(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return presetErr
		}
		config.ApplySeasonsPreset(&cfg, preset)
		logger.Debug("difficulty preset applied", "preset", preset)
	}

	seasons.Configure(cfg, seasons.WithLogger(logger))
	return nil
}

// setupLogger points the logger at --log-file. Without a file, logs are
// dropped since the game owns the terminal.
func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagLogFile == "" {
		logger.SetLevel(level)
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "seasons",
		Level:           level,
	})
	return nil
}
