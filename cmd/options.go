package cmd

import (
	"errors"
	"fmt"

	"github.com/PyGuy0815/simple-converters/pkg"
	"github.com/PyGuy0815/simple-converters/pkg/common"
	"github.com/PyGuy0815/simple-converters/pkg/config"
	"github.com/spf13/cobra"
)

// batchOptions holds the flag values shared by the cueiso and cuechd
// commands. Each command owns its own instance so flag state is never
// shared between them.
type batchOptions struct {
	output      string
	dirExt      string
	recursive   bool
	force       bool
	ask         bool
	verbose     bool
	jobs        int
	stopOnError bool
	configPath  string
}

// addBatchFlags registers the shared flag set on c
func addBatchFlags(c *cobra.Command, opts *batchOptions) {
	c.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (single input only)")
	c.Flags().StringVarP(&opts.dirExt, "dir", "d", "", "Process a directory, selecting files by this extension")
	c.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "Recursive directory processing (requires -d)")
	c.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite existing files without asking")
	c.Flags().BoolVarP(&opts.ask, "ask", "a", false, "Ask before overwriting existing files")
	c.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output (show debug messages)")
	c.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of conversions to run in parallel")
	c.Flags().BoolVar(&opts.stopOnError, "stop-on-error", false, "Abort the batch at the first failed job")
	c.Flags().StringVar(&opts.configPath, "config", "", "Configuration file (default "+config.DefaultFileName+" when present)")
	c.MarkFlagsMutuallyExclusive("force", "ask")
}

// resolve merges built-in defaults, the config file and explicitly set
// flags, in that order of increasing precedence
func (opts *batchOptions) resolve(c *cobra.Command) (config.Effective, error) {
	var file *config.File
	var err error
	if opts.configPath != "" {
		file, err = config.Load(opts.configPath)
	} else {
		file, err = config.LoadDefault()
	}
	if err != nil {
		return config.Effective{}, err
	}

	eff := file.Effective()
	switch {
	case opts.force:
		eff.Overwrite = "force"
	case opts.ask:
		eff.Overwrite = "ask"
	}
	if c.Flags().Changed("jobs") {
		eff.Jobs = opts.jobs
	}
	if c.Flags().Changed("stop-on-error") {
		eff.StopOnError = opts.stopOnError
	}
	if opts.verbose {
		eff.Verbose = true
	}
	return eff, nil
}

// collectInputs gathers the input files from either directory batch
// mode (-d, with the directory as the sole positional argument) or the
// positional arguments themselves, each treated as a glob pattern
func (opts *batchOptions) collectInputs(args []string) ([]string, error) {
	if opts.dirExt != "" {
		if len(args) != 1 {
			return nil, errors.New("-d requires exactly one directory path")
		}
		return pkg.CollectDir(args[0], opts.dirExt, opts.recursive)
	}
	if opts.recursive {
		return nil, errors.New(common.ErrRecursiveWithoutDir)
	}
	return pkg.ExpandPatterns(args)
}

// buildJobs pairs the collected inputs with the optional explicit
// output path
func (opts *batchOptions) buildJobs(inputs []string) ([]pkg.ConversionJob, error) {
	if len(inputs) == 0 {
		return nil, errors.New(common.ErrNoInputFiles)
	}
	if opts.output != "" && len(inputs) > 1 {
		return nil, errors.New(common.ErrOutputWithMultipleFiles)
	}

	jobs := make([]pkg.ConversionJob, 0, len(inputs))
	for _, input := range inputs {
		jobs = append(jobs, pkg.ConversionJob{InputPath: input, OutputPath: opts.output})
	}
	return jobs, nil
}

// buildGuard constructs the overwrite guard for the effective policy
func buildGuard(overwrite string, confirm pkg.Confirm) (*pkg.OverwriteGuard, error) {
	policy, err := pkg.ParseOverwritePolicy(overwrite)
	if err != nil {
		return nil, fmt.Errorf("invalid overwrite policy: %w", err)
	}
	return pkg.NewOverwriteGuard(policy, confirm), nil
}
