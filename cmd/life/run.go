package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/metrics"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var flagWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run in this terminal",
	Long: `Run the simulation in this terminal. Every cell is one or more square
pixels, each pixel two columns wide.

Controls:
  Space/P    - Pause/resume
  N          - Single generation while paused
  R / Shift+R - Re-randomize grid / grid and rules
  C          - Clear
  T          - Trim grid to the window
  D / E / X  - Brush draw / erase / off, then hold the left mouse button
  [ / ]      - Brush width
  + / -      - Faster / slower
  > / <      - Bigger / smaller cells
  Tab        - Next rule preset
  :          - Command prompt (frame, cell, rule, preset, brush, recency)
  ?          - Help
  Q/Ctrl+C   - Quit

Examples:
  life run
  life run --preset daynight --cell 2
  life run --rule B3/S1-5 --brush draw --brush-width 3
  life run --watch --config ./life.yaml`,
	Run: runRun,
}

func init() {
	addEngineFlags(runCmd)
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the settings file when it changes")
}

func runRun(_ *cobra.Command, _ []string) {
	if err := runTerminal(flagPreset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTerminal runs the terminal host; preset overrides the settings rule.
func runTerminal(preset string) error {
	if !isTerminal() {
		return fmt.Errorf("run needs a terminal; try 'life simulate'")
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	settings := loadSettings(logger)
	flagPreset = preset
	cfg, brush, err := engineConfig(settings, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.Options{
		Config:    cfg,
		Brush:     brush,
		Preset:    preset,
		FrameRate: settings.Terminal.FrameRate.Int(),
		Host:      "tui",
		Store:     store,
		Logger:    logger,
		Observer:  metrics.NewRecorder(metrics.Default(), "tui"),
	}

	var ready func(*tea.Program)
	if flagWatch {
		ready = func(p *tea.Program) { startWatcher(ctx, p, logger) }
	}

	logger.Info("starting", "rule", cfg.Rules.String(), "frame_ms", cfg.FrameLengthMs, "cell", cfg.CellSize)
	_, err = tui.Run(opts, ready)
	return err
}

// startWatcher sends reloaded settings to the program until ctx ends.
func startWatcher(ctx context.Context, p *tea.Program, logger *log.Logger) {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		logger.Warn("no settings file to watch")
		return
	}

	w, err := config.NewWatcher(path, logger, func(s config.Settings) {
		cfg, brush, err := engineConfig(s, logger)
		if err != nil {
			logger.Warn("reloaded settings rejected", "err", err)
			return
		}
		metrics.Default().ConfigReloadsTotal.Inc()
		p.Send(tui.ConfigMsg{Config: cfg, Brush: brush})
	})
	if err != nil {
		logger.Warn("could not watch settings", "err", err)
		return
	}

	go func() {
		defer w.Stop()
		if err := w.Start(ctx); err != nil {
			logger.Warn("settings watcher stopped", "err", err)
		}
	}()
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a rule preset, then run",
	Long: `Show the rule presets with the best peak population on record, then run
the selected one. Tab opens the run history.`,
	Run: runMenu,
}

func init() {
	addEngineFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	store := openStore(logger)
	closeLog()

	current := flagPreset
	if current == "" {
		current = "conway"
	}

	for {
		result, err := tui.RunMenu(store, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch {
		case result.Quit:
			if store != nil {
				store.Close()
			}
			return

		case result.WantsHistory:
			width, height := terminalSize()
			if err := tui.RunHistory(store, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			if store != nil {
				store.Close()
			}
			if !registry.Exists(result.PresetID) {
				return
			}
			flagRule = ""
			if err := runTerminal(result.PresetID); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalSize returns the stdout size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
