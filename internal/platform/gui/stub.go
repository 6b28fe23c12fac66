//go:build !ebiten

package gui

import "errors"

// ErrNoGUI is returned by Run in builds without the 'ebiten' tag.
var ErrNoGUI = errors.New("gui: the window host requires building with the 'ebiten' tag (go build -tags ebiten)")

// Run reports that the window host is not compiled in.
func Run(Options) error {
	return ErrNoGUI
}
