// Package cmd provides command-line interface for CUE/BIN <-> ISO
// conversion of single-track MODE1 data disc images.
package cmd

import (
	"os"

	"github.com/PyGuy0815/simple-converters/pkg"
	"github.com/PyGuy0815/simple-converters/pkg/common"
	"github.com/spf13/cobra"
)

var cueisoOpts batchOptions
var cueisoStrict bool

// cueisoCmd transcodes between CUE/BIN and ISO images. Direction is
// chosen per input by extension.
var cueisoCmd = &cobra.Command{
	Use:   "cueiso [paths...]",
	Short: "Convert between CUE/BIN and ISO images (data CDs only)",
	Long: `Convert between CUE/BIN and ISO images (data CDs only).

Direction is chosen per input file by extension:
  .cue    parse the sheet and strip its BIN down to an ISO
  .iso    wrap the payload in raw sectors, emitting BIN plus a CUE sheet
  .bin    strip raw sectors to an ISO (sector mode assumed MODE1/2352)

Inputs may be given as paths or glob patterns, or collected from a
directory with -d/-r. Only single-track MODE1 data discs are supported;
audio tracks are rejected.

Examples:
  simple-converters cueiso cd.iso
  simple-converters cueiso cd_001.cue cd_002.cue
  simple-converters cueiso cd_game.cue -o game.iso
  simple-converters cueiso "*.cue"
  simple-converters cueiso -d cue -r dumps/ -a`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eff, err := cueisoOpts.resolve(cmd)
		if err != nil {
			return err
		}
		common.SetVerboseMode(eff.Verbose)

		inputs, err := cueisoOpts.collectInputs(args)
		if err != nil {
			return err
		}
		jobs, err := cueisoOpts.buildJobs(inputs)
		if err != nil {
			return err
		}

		guard, err := buildGuard(eff.Overwrite, pkg.StdinConfirm(os.Stdin, os.Stdout))
		if err != nil {
			return err
		}

		processor := pkg.NewConversionProcessor(guard)
		if cmd.Flags().Changed("strict") {
			processor.Transcoder.StrictSize = cueisoStrict
		} else {
			processor.Transcoder.StrictSize = eff.Strict
		}

		results := pkg.RunBatch(processor, jobs, eff.Jobs, eff.StopOnError)
		return pkg.SummarizeBatch(results)
	},
}

// init initializes the cueiso command with its flags
func init() {
	rootCmd.AddCommand(cueisoCmd)
	addBatchFlags(cueisoCmd, &cueisoOpts)
	cueisoCmd.Flags().BoolVar(&cueisoStrict, "strict", false, "Reject inputs whose size is not a multiple of the sector size")
}
