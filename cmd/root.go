// Package cmd provides the command-line interface for SimpleConverters.
// SimpleConverters converts optical disc images between CUE/BIN, ISO
// and CHD representations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the SimpleConverters application.
var rootCmd = &cobra.Command{
	Use:   "simple-converters",
	Short: "Convert optical disc images between CUE/BIN, ISO and CHD",
	Long: `SimpleConverters - Utilities for converting optical disc images
between CUE/BIN, ISO and CHD representations (single-track MODE1 data discs).

Currently supports:
  - cueiso: transcode CUE/BIN to ISO and ISO to BIN+CUE
  - cuechd: compress CUE/ISO/BIN to CHD and extract CHD back (needs chdman)

Examples:
  simple-converters cueiso cd.iso
  simple-converters cueiso cd_001.cue cd_002.cue
  simple-converters cueiso cd_game.cue -o game.iso
  simple-converters cueiso "*.cue"
  simple-converters cueiso -d cue -r dumps/ -a
  simple-converters cuechd game.cue
  simple-converters cuechd game.chd
  simple-converters cuechd -d cue discs/ -r -f

Use 'simple-converters [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
