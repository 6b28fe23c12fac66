package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// Default returns the hardcoded settings used when no file can be read.
func Default() Settings {
	return Settings{
		Engine: EngineSettings{
			FrameLengthMs: 150,
			CellSize:      1,
			ShowRecency:   true,
			Preset:        "conway",
		},
		Brush: BrushSettings{
			Mode:  "off",
			Width: 3,
		},
		Terminal: TerminalSettings{
			FrameRate: 60,
		},
		GUI: GUISettings{
			Width:    1280,
			Height:   720,
			CellSize: 10,
			TPS:      250,
		},
		Server: ServerSettings{
			Addr:        ":2323",
			HostKeyPath: ".ssh/life_ed25519",
			IdleTimeout: "30m",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
