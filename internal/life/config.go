package life

import "time"

// Defaults for a fresh engine.
const (
	DefaultFrameLengthMs = 150
	DefaultCellSize      = 10
)

// Config holds every setting the engine reads. The engine reads it fresh on
// each scheduling decision, so a Configure call applies without a restart.
type Config struct {
	FrameLengthMs int
	CellSize      int
	ShowRecency   bool
	Rules         RuleSet
	Seed          int64 // 0 derives a seed from the clock
}

// DefaultConfig returns Conway's rule at the default pace and cell size.
func DefaultConfig() Config {
	return Config{
		FrameLengthMs: DefaultFrameLengthMs,
		CellSize:      DefaultCellSize,
		ShowRecency:   true,
		Rules:         Conway(),
	}
}

// FrameLength returns the frame length as a duration. Negative lengths
// count as zero, which steps on every poll.
func (c Config) FrameLength() time.Duration {
	if c.FrameLengthMs < 0 {
		return 0
	}
	return time.Duration(c.FrameLengthMs) * time.Millisecond
}
