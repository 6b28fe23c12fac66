package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestParseNumber(t *testing.T) {
	tests := map[string]int{
		"150":    150,
		" 42 ":   42,
		"-3":     -3,
		"12.9":   12,
		"":       0,
		"abc":    0,
		"10px":   0,
		"1e2":    100,
		"NaN":    0,
		"-Inf":   0,
		"+7":     7,
		"3.0.1":  0,
		"1e300":  0,
		"-1e300": 0,
		"2.5e9":  0,
		"1e9":    1000000000,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseNumber(in), "ParseNumber(%q)", in)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("engine:\n  frame_length_ms: 40\n"))
	require.NoError(t, err)
	assert.Equal(t, Number(40), cfg.Engine.FrameLengthMs)
	assert.Equal(t, Number(1), cfg.Engine.CellSize)
	assert.True(t, cfg.Engine.ShowRecency)
	assert.Equal(t, "conway", cfg.Engine.Preset)
}

func TestParseLenientNumbers(t *testing.T) {
	cfg, err := Parse([]byte(`
engine:
  frame_length_ms: fast
  cell_size: "12"
brush:
  width: [1, 2]
`))
	require.NoError(t, err)
	assert.Zero(t, cfg.Engine.FrameLengthMs)
	assert.Equal(t, Number(12), cfg.Engine.CellSize)
	assert.Zero(t, cfg.Brush.Width)
	assert.Equal(t, 1, cfg.BrushState().Width)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("engine: [unclosed"))
	assert.Error(t, err)
}

func TestRulesPrecedence(t *testing.T) {
	e := EngineSettings{Preset: "highlife"}
	rules, err := e.Rules()
	require.NoError(t, err)
	assert.Equal(t, "B3,6/S2-3", rules.String())

	e.Rule = "B2/S"
	rules, err = e.Rules()
	require.NoError(t, err)
	assert.Equal(t, "B2/S", rules.String())

	e.Survive = []ConditionSettings{{Min: 5, Max: 2}}
	rules, err = e.Rules()
	require.NoError(t, err)
	assert.Equal(t, []life.Condition{{Min: 5, Max: 2}}, rules.Survive)
	assert.Empty(t, rules.Birth)

	rules, err = EngineSettings{}.Rules()
	require.NoError(t, err)
	assert.Equal(t, life.Conway(), rules)
}

func TestRulesErrors(t *testing.T) {
	_, err := EngineSettings{Rule: "B9/S"}.Rules()
	assert.Error(t, err)

	cfg := Default()
	cfg.Engine.Preset = "missing"
	ec, err := cfg.EngineConfig()
	assert.Error(t, err)
	assert.Equal(t, life.Conway(), ec.Rules)
}

func TestEngineConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
engine:
  frame_length_ms: 75
  cell_size: 2
  show_recency: false
  seed: 99
  survive:
    - {min: 2, max: 3}
  birth:
    - {min: 3, max: 3}
    - {min: 6, max: 6}
brush:
  mode: erase
  width: 4
`))
	require.NoError(t, err)

	ec, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, life.Config{
		FrameLengthMs: 75,
		CellSize:      2,
		ShowRecency:   false,
		Rules:         life.MustParseRule("B36/S23"),
		Seed:          99,
	}, ec)
	assert.Equal(t, life.BrushState{Mode: life.BrushErase, Width: 5}, cfg.BrushState())
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  rule: B36/S23\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "B36/S23", cfg.Engine.Rule)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Engine.Rule = "B3/S23"
	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "custom.yaml", ResolvePath("custom.yaml"), "a custom path wins even when missing")

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	assert.Empty(t, ResolvePath(""), "no files means embedded defaults")

	local := filepath.Join("configs", FileName)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(local, []byte("engine:\n  cell_size: 3\n"), 0o644))
	assert.Equal(t, local, ResolvePath(""))

	user := filepath.Join(dir, ".life", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(user), 0o755))
	require.NoError(t, os.WriteFile(user, []byte("engine:\n  cell_size: 4\n"), 0o644))
	assert.Equal(t, user, ResolvePath(""), "the user file comes before the local one")
}
