// Package config provides YAML-based settings loading for the life engine
// and its hosts, lenient numeric parsing and hot reload.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the whole settings file.
type Settings struct {
	Engine   EngineSettings   `yaml:"engine"`
	Brush    BrushSettings    `yaml:"brush"`
	Terminal TerminalSettings `yaml:"terminal"`
	GUI      GUISettings      `yaml:"gui"`
	Server   ServerSettings   `yaml:"server"`
}

// EngineSettings configures the simulation.
// Rules are taken from Survive/Birth when either list is set, then from
// Rule (B/S notation), then from Preset.
type EngineSettings struct {
	FrameLengthMs Number              `yaml:"frame_length_ms"`
	CellSize      Number              `yaml:"cell_size"`
	ShowRecency   bool                `yaml:"show_recency"`
	Rule          string              `yaml:"rule"`
	Preset        string              `yaml:"preset"`
	Survive       []ConditionSettings `yaml:"survive,omitempty"`
	Birth         []ConditionSettings `yaml:"birth,omitempty"`
	Seed          int64               `yaml:"seed"`
}

// ConditionSettings is one inclusive neighbour range.
type ConditionSettings struct {
	Min Number `yaml:"min"`
	Max Number `yaml:"max"`
}

// BrushSettings is the initial brush.
type BrushSettings struct {
	Mode  string `yaml:"mode"` // "off", "draw" or "erase"
	Width Number `yaml:"width"`
}

// TerminalSettings configures the terminal host.
type TerminalSettings struct {
	FrameRate Number `yaml:"frame_rate"` // display and overlay refreshes per second
}

// GUISettings configures the window host. Cell size is in screen pixels.
type GUISettings struct {
	Width    Number `yaml:"width"`
	Height   Number `yaml:"height"`
	CellSize Number `yaml:"cell_size"`
	TPS      Number `yaml:"tps"`
}

// ServerSettings configures `life serve`.
type ServerSettings struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key"`
	MetricsAddr string `yaml:"metrics_addr"`
	IdleTimeout string `yaml:"idle_timeout"`
}

// Number is an int that never fails to decode: values that do not parse
// become 0.
type Number int

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*n = 0
		return nil
	}
	*n = Number(ParseNumber(value.Value))
	return nil
}

// Int returns the number as an int.
func (n Number) Int() int { return int(n) }

// ParseNumber parses a decimal number, truncating fractions.
// Input that is not a number, or lies outside the int32 range, yields 0.
func ParseNumber(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f)
	}
	return 0
}

// Parse decodes settings from YAML on top of Default, so missing keys keep
// their default values.
func Parse(data []byte) (Settings, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Marshal encodes settings as YAML.
func Marshal(cfg Settings) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
