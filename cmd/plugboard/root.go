package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nor-os/plugboard/internal/config"
)

var version = "0.3.0"

var (
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "plugboard",
	Short:   "plugboard — terminal node-graph patch editor",
	Long:    "Edit boards of nodes and wires in the terminal: drag nodes, drag sockets to connect, save back to TOML.",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !loadConfig().UI.Color {
			color.NoColor = true
		}
	},
}

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() *config.Config {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func init() {
	rootCmd.SetVersionTemplate("plugboard {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		editCmd(),
		inspectCmd(),
		exportCmd(),
		initCmd(),
	)
}
