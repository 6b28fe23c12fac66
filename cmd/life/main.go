// life is a configurable Game of Life for the terminal, a desktop window or
// SSH clients.
//
// Usage:
//
//	life run                 - Run in this terminal (default)
//	life menu                - Pick a rule preset, then run
//	life gui                 - Run in a window (build with -tags ebiten)
//	life serve               - Start SSH server for remote sessions
//	life simulate            - Step headless and print populations
//	life presets             - List rule presets
//	life history             - Browse saved runs
//	life config              - Print the effective settings
//
// Global flags:
//
//	--config <path>   - Settings file (default: ~/.life/config.yaml, ./configs/life.yaml)
//	--seed <value>    - Set RNG seed for reproducible grids
//	--db <path>       - Set database path (default: ~/.life/runs.db)
//	--log-file <path> - Write logs to a file (terminal hosts log nowhere otherwise)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Game of Life with configurable rules",
	Long: `life runs a generalized Game of Life: birth and survival rules are lists
of neighbour-count ranges, the grid follows the window size and a brush
draws or erases cells while the simulation runs.

Available commands:
  run       - Run in this terminal
  menu      - Pick a rule preset, then run
  gui       - Run in a desktop window
  serve     - Start SSH server for remote sessions
  simulate  - Step headless and print populations
  presets   - List rule presets
  history   - Browse saved runs
  config    - Print the effective settings

Examples:
  life
  life run --preset highlife
  life run --rule B36/S23 --frame 50
  life serve --ssh :2323 --metrics :9090
  life simulate --cols 64 --rows 32 --generations 200`,
	Run: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = settings value, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addEngineFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. fallback receives logs when no
// --log-file is set; terminal hosts pass io.Discard to keep the screen clean.
// The returned close function releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			out, closeFn = f, func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closeFn
}

// loadSettings reads the settings file; a broken file is reported and the
// defaults are used.
func loadSettings(logger *log.Logger) config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load settings, using defaults", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return settings
}

// openStore opens the run history. The hosts work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		return nil
	}
	return store
}
