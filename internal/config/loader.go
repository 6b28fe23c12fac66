package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// FileName is the settings file name in the user and local config dirs.
const FileName = "life.yaml"

// Load loads settings.
// Search order: customPath -> ~/.life/config.yaml -> ./configs/life.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLifeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and parses one settings file.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns the file Load would read for customPath, or "" when
// the embedded defaults would be used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "config.yaml")
}

// Rules resolves the rule set: explicit lists, then B/S notation, then a
// registered preset, then Conway.
func (e EngineSettings) Rules() (life.RuleSet, error) {
	if len(e.Survive) > 0 || len(e.Birth) > 0 {
		return life.RuleSet{
			Survive: conditions(e.Survive),
			Birth:   conditions(e.Birth),
		}, nil
	}
	if e.Rule != "" {
		rules, err := life.ParseRule(e.Rule)
		if err != nil {
			return life.Conway(), fmt.Errorf("config: %w", err)
		}
		return rules, nil
	}
	if e.Preset != "" {
		p, err := registry.Get(e.Preset)
		if err != nil {
			return life.Conway(), fmt.Errorf("config: %w", err)
		}
		return p.Rules, nil
	}
	return life.Conway(), nil
}

func conditions(in []ConditionSettings) []life.Condition {
	out := make([]life.Condition, len(in))
	for i, c := range in {
		out[i] = life.Condition{Min: c.Min.Int(), Max: c.Max.Int()}
	}
	return out
}

// EngineConfig converts the engine section into a life.Config.
// On a rule error the returned config still holds Conway's rule.
func (s Settings) EngineConfig() (life.Config, error) {
	rules, err := s.Engine.Rules()
	return life.Config{
		FrameLengthMs: s.Engine.FrameLengthMs.Int(),
		CellSize:      s.Engine.CellSize.Int(),
		ShowRecency:   s.Engine.ShowRecency,
		Rules:         rules,
		Seed:          s.Engine.Seed,
	}, err
}

// BrushState converts the brush section.
func (s Settings) BrushState() life.BrushState {
	return life.BrushState{
		Mode:  life.ParseBrushMode(s.Brush.Mode),
		Width: s.Brush.Width.Int(),
	}.Normalized()
}
