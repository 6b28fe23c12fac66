package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/metrics"
	"github.com/vovakirdan/tui-life/internal/platform/gui"
)

var (
	flagWidth  int
	flagHeight int
	flagTPS    int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Run in a desktop window",
	Long: `Open a resizable window running the simulation. Requires a build with
the ebiten tag:

  go build -tags ebiten ./cmd/life

Controls are the terminal ones, plus F for fullscreen and H to hide the
status line. Hold Shift with R to also restore the default rules.`,
	Run: runGUI,
}

func init() {
	addEngineFlags(guiCmd)
	guiCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels")
	guiCmd.Flags().IntVar(&flagTPS, "tps", 0, "Updates per second; the scheduler polls once per update")
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	settings := loadSettings(logger)
	if flagCell <= 0 {
		flagCell = settings.GUI.CellSize.Int()
	}
	cfg, brush, err := engineConfig(settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := gui.Options{
		Config:   cfg,
		Brush:    brush,
		Width:    pick(flagWidth, settings.GUI.Width.Int()),
		Height:   pick(flagHeight, settings.GUI.Height.Int()),
		TPS:      pick(flagTPS, settings.GUI.TPS.Int()),
		Store:    store,
		Logger:   logger,
		Observer: metrics.NewRecorder(metrics.Default(), "gui"),
	}
	if err := gui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pick returns flag when set, otherwise the settings value.
func pick(flag, setting int) int {
	if flag > 0 {
		return flag
	}
	return setting
}
