// Package config loads the optional YAML defaults file. Precedence is
// built-in defaults, then file values, then CLI flags the user set
// explicitly; the merge with flags happens in the cmd layer, this
// package only produces effective defaults.
package config

import (
	"fmt"
	"os"

	"github.com/PyGuy0815/simple-converters/pkg/common"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked for in the working
// directory when --config is not given
const DefaultFileName = "simple-converters.yaml"

// Built-in defaults applied when neither file nor flags specify a value
const (
	DefaultOverwrite = "fail"
	DefaultJobs      = 1
)

// File mirrors the YAML config file. Pointer fields distinguish "not
// set" from an explicit false.
type File struct {
	Overwrite   string `yaml:"overwrite"` // fail | force | ask
	Jobs        int    `yaml:"jobs"`
	StopOnError *bool  `yaml:"stop_on_error"`
	Strict      *bool  `yaml:"strict"`
	Chdman      string `yaml:"chdman"`
	Verbose     *bool  `yaml:"verbose"`
}

// Effective is the merged configuration the commands consume
type Effective struct {
	Overwrite   string
	Jobs        int
	StopOnError bool
	Strict      bool
	Chdman      string
	Verbose     bool
}

// Load reads and validates an explicitly named config file. A file that
// cannot be read or parsed is an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToLoadConfig, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, common.FormatError(common.ErrFailedToLoadConfig, err)
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadDefault loads DefaultFileName from the working directory when it
// exists; a missing implicit config file is not an error
func LoadDefault() (*File, error) {
	if _, err := os.Stat(DefaultFileName); os.IsNotExist(err) {
		return &File{}, nil
	}
	// Any other stat outcome (including permission errors) falls
	// through to Load, which reports the underlying failure: a config
	// file that exists but cannot be read must not be silently ignored
	return Load(DefaultFileName)
}

func (f *File) validate() error {
	switch f.Overwrite {
	case "", "fail", "force", "ask":
	default:
		return fmt.Errorf("%s: unknown overwrite policy %q (want fail, force or ask)", common.ErrFailedToLoadConfig, f.Overwrite)
	}
	if f.Jobs < 0 {
		return fmt.Errorf("%s: jobs must not be negative", common.ErrFailedToLoadConfig)
	}
	return nil
}

// Effective applies built-in defaults to the file values
func (f *File) Effective() Effective {
	eff := Effective{
		Overwrite: DefaultOverwrite,
		Jobs:      DefaultJobs,
		Chdman:    f.Chdman,
	}
	if f.Overwrite != "" {
		eff.Overwrite = f.Overwrite
	}
	if f.Jobs > 0 {
		eff.Jobs = f.Jobs
	}
	if f.StopOnError != nil {
		eff.StopOnError = *f.StopOnError
	}
	if f.Strict != nil {
		eff.Strict = *f.Strict
	}
	if f.Verbose != nil {
		eff.Verbose = *f.Verbose
	}
	return eff
}
