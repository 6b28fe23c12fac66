//go:build !ebiten

package gui

import (
	"errors"
	"testing"
)

func TestRunWithoutTag(t *testing.T) {
	if err := Run(Options{}); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("Run() = %v, want ErrNoGUI", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Width != 1280 || o.Height != 720 || o.TPS != 250 {
		t.Errorf("withDefaults() = %+v", o)
	}
	o = Options{Width: 640, Height: 480, TPS: 60}.withDefaults()
	if o.Width != 640 || o.Height != 480 || o.TPS != 60 {
		t.Errorf("withDefaults() overrode explicit values: %+v", o)
	}
}
