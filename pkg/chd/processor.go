package chd

import (
	"path/filepath"
	"strings"

	"github.com/PyGuy0815/simple-converters/pkg"
	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// Processor dispatches CHD conversion jobs by input extension:
//
//	.cue .iso .bin  compress to .chd
//	.chd            extract to .cue (chdman writes the BIN next to it)
//
// Anything else is skipped with a warning. Destination writes pass the
// overwrite guard first, same as the core transcoder.
type Processor struct {
	Codec Codec
	Guard *pkg.OverwriteGuard
}

// NewProcessor creates a CHD processor around the given codec and guard
func NewProcessor(codec Codec, guard *pkg.OverwriteGuard) *Processor {
	return &Processor{Codec: codec, Guard: guard}
}

// Dispatch runs one CHD job to completion
func (p *Processor) Dispatch(job pkg.ConversionJob) pkg.JobResult {
	switch strings.ToLower(filepath.Ext(job.InputPath)) {
	case ".cue", ".iso", ".bin":
		return pkg.JobResult{Job: job, Err: p.compress(job)}
	case ".chd":
		return pkg.JobResult{Job: job, Err: p.extract(job)}
	default:
		common.LogWarn(common.WarnSkippingUnsupported, job.InputPath)
		return pkg.JobResult{Job: job, Skipped: true}
	}
}

func (p *Processor) compress(job pkg.ConversionJob) error {
	out := resolveOutput(job, ".chd")
	if err := p.Guard.Check(out); err != nil {
		return err
	}
	common.LogDebug(common.DebugJobDispatched, job.InputPath, out)

	if err := p.Codec.Compress(job.InputPath, out); err != nil {
		return err
	}
	common.LogInfo(common.InfoToChd, out)
	return nil
}

func (p *Processor) extract(job pkg.ConversionJob) error {
	out := resolveOutput(job, ".cue")
	if err := p.Guard.Check(out); err != nil {
		return err
	}
	common.LogDebug(common.DebugJobDispatched, job.InputPath, out)

	if err := p.Codec.Extract(job.InputPath, out); err != nil {
		return err
	}
	common.LogInfo(common.InfoChdToCue, out)
	return nil
}

func resolveOutput(job pkg.ConversionJob, ext string) string {
	if job.OutputPath != "" {
		return job.OutputPath
	}
	return strings.TrimSuffix(job.InputPath, filepath.Ext(job.InputPath)) + ext
}
