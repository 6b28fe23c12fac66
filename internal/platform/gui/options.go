// Package gui hosts the life engine in a desktop window with ebiten.
// The window is built only with the 'ebiten' build tag; other builds get a
// stub whose Run reports the missing tag.
package gui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Options configures the window host.
type Options struct {
	Config   life.Config
	Brush    life.BrushState
	Width    int // initial window width in pixels
	Height   int // initial window height in pixels
	TPS      int // ebiten updates per second; the scheduler polls once per update
	Store    *storage.Store
	Logger   *log.Logger
	Observer life.StepObserver
}

// hudHeight is the strip at the top of the window holding the status text.
// The brush is disarmed while the pointer is over it.
const hudHeight = 16

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 720
	}
	if o.TPS <= 0 {
		o.TPS = 250
	}
	return o
}
