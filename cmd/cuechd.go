// Package cmd provides command-line interface for CHD compression of
// disc images via the external chdman executable.
package cmd

import (
	"os"

	"github.com/PyGuy0815/simple-converters/pkg"
	"github.com/PyGuy0815/simple-converters/pkg/chd"
	"github.com/PyGuy0815/simple-converters/pkg/common"
	"github.com/spf13/cobra"
)

var cuechdOpts batchOptions

// cuechdCmd bridges CUE/BIN/ISO images to the CHD container format.
// The actual compression is done by chdman; this command only resolves
// inputs, applies the overwrite policy and invokes it.
var cuechdCmd = &cobra.Command{
	Use:   "cuechd [paths...]",
	Short: "Convert between CUE/BIN/ISO and CHD images using chdman",
	Long: `Convert between CUE/BIN/ISO and CHD images using chdman.

Direction is chosen per input file by extension:
  .cue .iso .bin    compress to a CHD container
  .chd              extract back to a CUE/BIN pair

Requirements:
  chdman (from MAME tools) must be installed and discoverable; set
  'chdman' in the config file to point at a non-PATH location.

Examples:
  simple-converters cuechd game.cue
  simple-converters cuechd game.iso
  simple-converters cuechd game.chd
  simple-converters cuechd "*.cue"
  simple-converters cuechd -d cue discs/ -r -f
  simple-converters cuechd -d chd discs/`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eff, err := cuechdOpts.resolve(cmd)
		if err != nil {
			return err
		}
		common.SetVerboseMode(eff.Verbose)

		// Fail before touching any input when the tool is missing
		codec, err := chd.NewChdmanCodec(eff.Chdman)
		if err != nil {
			return err
		}

		inputs, err := cuechdOpts.collectInputs(args)
		if err != nil {
			return err
		}
		jobs, err := cuechdOpts.buildJobs(inputs)
		if err != nil {
			return err
		}

		guard, err := buildGuard(eff.Overwrite, pkg.StdinConfirm(os.Stdin, os.Stdout))
		if err != nil {
			return err
		}

		processor := chd.NewProcessor(codec, guard)
		results := pkg.RunBatch(processor, jobs, eff.Jobs, eff.StopOnError)
		return pkg.SummarizeBatch(results)
	},
}

// init initializes the cuechd command with its flags
func init() {
	rootCmd.AddCommand(cuechdCmd)
	addBatchFlags(cuechdCmd, &cuechdOpts)
}
