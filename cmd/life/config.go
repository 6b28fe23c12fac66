package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings as YAML after the search order is applied:
--config, ~/.life/config.yaml, ./configs/life.yaml, built-in defaults.

Examples:
  life config
  life config --defaults > ~/.life/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if path := config.ResolvePath(flagConfig); path != "" {
		fmt.Printf("# source: %s\n", path)
	} else {
		fmt.Println("# source: built-in defaults")
	}

	data, err := config.Marshal(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
