package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Engine flags shared by the host commands. Zero values keep the settings.
var (
	flagRule      string
	flagPreset    string
	flagFrame     int
	flagCell      int
	flagNoRecency bool
	flagBrush     string
	flagBrushW    int
)

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRule, "rule", "", "Rule in B/S notation, e.g. B36/S23 or B3/S2-3")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset ID (see 'life presets')")
	cmd.Flags().IntVar(&flagFrame, "frame", -1, "Frame length in milliseconds between generations")
	cmd.Flags().IntVar(&flagCell, "cell", 0, "Cell size in pixels")
	cmd.Flags().BoolVar(&flagNoRecency, "no-recency", false, "Paint every live cell in one colour")
	cmd.Flags().StringVar(&flagBrush, "brush", "", "Initial brush: draw, erase or off")
	cmd.Flags().IntVar(&flagBrushW, "brush-width", 0, "Initial brush width in cells (rounded up to odd)")
}

// engineConfig merges settings and command line flags.
func engineConfig(settings config.Settings, logger *log.Logger) (life.Config, life.BrushState, error) {
	cfg, err := settings.EngineConfig()
	if err != nil {
		logger.Warn("invalid rule in settings, using Conway", "err", err)
	}

	switch {
	case flagRule != "":
		rules, err := life.ParseRule(flagRule)
		if err != nil {
			return cfg, life.BrushState{}, err
		}
		cfg.Rules = rules
	case flagPreset != "":
		p, err := registry.Get(flagPreset)
		if err != nil {
			return cfg, life.BrushState{}, fmt.Errorf("%w (run 'life presets' to list them)", err)
		}
		cfg.Rules = p.Rules
	}
	if flagFrame >= 0 {
		cfg.FrameLengthMs = flagFrame
	}
	if flagCell > 0 {
		cfg.CellSize = flagCell
	}
	if flagNoRecency {
		cfg.ShowRecency = false
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	brush := settings.BrushState()
	if flagBrush != "" {
		brush.Mode = life.ParseBrushMode(flagBrush)
	}
	if flagBrushW > 0 {
		brush.Width = flagBrushW
	}
	return cfg, brush.Normalized(), nil
}
