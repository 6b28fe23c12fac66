// Package tui hosts the life engine in a terminal with Bubble Tea, locally
// or per SSH session via Wish. Every engine activity is a message handled by
// the single Update loop, so the engine needs no locking.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
)

// pollMsg asks the engine whether the pending step is due.
type pollMsg time.Time

// stepMsg runs one generation.
type stepMsg time.Time

// overlayMsg runs one draw-overlay cycle.
type overlayMsg time.Time

// ConfigMsg replaces the engine configuration and brush, e.g. after the
// settings file changed on disk.
type ConfigMsg struct {
	Config life.Config
	Brush  life.BrushState
}

// pollCmd schedules the next scheduler poll.
func pollCmd() tea.Cmd {
	return tea.Tick(life.PollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// stepCmd hands a due step to the next Update.
func stepCmd() tea.Cmd {
	return func() tea.Msg {
		return stepMsg(time.Now())
	}
}

// overlayCmd schedules the next overlay cycle at the display frame rate.
func overlayCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return overlayMsg(t)
	})
}
