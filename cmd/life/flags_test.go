package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
)

// resetEngineFlags restores the flag defaults after a test.
func resetEngineFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagRule, flagPreset = "", ""
		flagFrame, flagCell = -1, 0
		flagNoRecency = false
		flagBrush, flagBrushW = "", 0
		flagSeed = 0
	})
}

func TestEngineConfigUsesSettings(t *testing.T) {
	resetEngineFlags(t)
	flagFrame = -1

	settings := config.Default()
	settings.Engine.Preset = "seeds"
	settings.Brush.Mode = "draw"

	cfg, brush, err := engineConfig(settings, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "B2/S", cfg.Rules.String())
	assert.Equal(t, 150, cfg.FrameLengthMs)
	assert.Equal(t, life.BrushState{Mode: life.BrushDraw, Width: 3}, brush)
}

func TestEngineConfigFlagsOverride(t *testing.T) {
	resetEngineFlags(t)
	flagRule = "B36/S23"
	flagPreset = "seeds"
	flagFrame = 0
	flagCell = 4
	flagNoRecency = true
	flagBrush = "erase"
	flagBrushW = 4
	flagSeed = 99

	cfg, brush, err := engineConfig(config.Default(), log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "B3,6/S2-3", cfg.Rules.String(), "--rule wins over --preset")
	assert.Equal(t, 0, cfg.FrameLengthMs)
	assert.Equal(t, 4, cfg.CellSize)
	assert.False(t, cfg.ShowRecency)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, life.BrushState{Mode: life.BrushErase, Width: 5}, brush)
}

func TestEngineConfigErrors(t *testing.T) {
	resetEngineFlags(t)
	flagFrame = -1

	flagRule = "B3"
	_, _, err := engineConfig(config.Default(), log.New(io.Discard))
	assert.Error(t, err)

	flagRule, flagPreset = "", "nope"
	_, _, err = engineConfig(config.Default(), log.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "life presets")
}

func TestFirstNonEmptyAndPick(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty())
	assert.Equal(t, 5, pick(5, 9))
	assert.Equal(t, 9, pick(0, 9))
}
