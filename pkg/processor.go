package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// ConversionProcessor dispatches CUE/BIN/ISO conversion jobs. Direction
// is chosen by input extension:
//
//	.cue  parse sheet, referenced BIN -> ISO
//	.iso  ISO -> BIN plus companion CUE sheet
//	.bin  BIN -> ISO (sector mode assumed MODE1/2352)
//
// Anything else is skipped with a warning. All destination writes pass
// through the overwrite guard first; on denial the destination is never
// touched. A destination left partial by a mid-transcode failure is
// removed.
type ConversionProcessor struct {
	Decoder    CueDecoder
	Encoder    CueEncoder
	Transcoder *BinTranscoder
	Guard      *OverwriteGuard
}

// NewConversionProcessor creates a processor with the default decoder,
// encoder and transcoder wired to the given overwrite guard
func NewConversionProcessor(guard *OverwriteGuard) *ConversionProcessor {
	return &ConversionProcessor{
		Decoder:    NewCueDecoder(),
		Encoder:    NewCueEncoder(),
		Transcoder: NewTranscoder(),
		Guard:      guard,
	}
}

// Dispatch runs one conversion job to completion
func (p *ConversionProcessor) Dispatch(job ConversionJob) JobResult {
	switch strings.ToLower(filepath.Ext(job.InputPath)) {
	case ".cue":
		job.Direction = DirectionRawToUser
		return JobResult{Job: job, Err: p.cueToIso(job)}
	case ".bin":
		job.Direction = DirectionRawToUser
		out := resolveOutput(job, ".iso")
		return JobResult{Job: job, Err: p.binToIso(job.InputPath, out, Raw2352)}
	case ".iso":
		job.Direction = DirectionUserToRaw
		return JobResult{Job: job, Err: p.isoToBin(job)}
	default:
		common.LogWarn(common.WarnSkippingUnsupported, job.InputPath)
		return JobResult{Job: job, Skipped: true}
	}
}

// cueToIso parses the sheet, locates the referenced binary next to it
// and strips it down to an ISO
func (p *ConversionProcessor) cueToIso(job ConversionJob) error {
	descriptor, err := p.Decoder.DecodeFile(job.InputPath)
	if err != nil {
		return err
	}

	binPath := filepath.Join(filepath.Dir(job.InputPath), descriptor.BinFileName)
	return p.binToIso(binPath, resolveOutput(job, ".iso"), descriptor.Mode)
}

// binToIso streams the user data region of every sector in binPath to
// isoPath
func (p *ConversionProcessor) binToIso(binPath, isoPath string, mode SectorMode) error {
	if err := p.Guard.Check(isoPath); err != nil {
		return err
	}
	common.LogDebug(common.DebugJobDispatched, binPath, isoPath)

	src, err := os.Open(binPath)
	if err != nil {
		return common.FormatError(common.ErrFailedToOpenSource, err)
	}
	defer src.Close()

	dst, err := os.Create(isoPath)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateDest, err)
	}

	sectors, err := p.Transcoder.RawToUser(dst, src, mode)
	if err != nil {
		dst.Close()
		removePartial(isoPath)
		return err
	}
	if err := dst.Close(); err != nil {
		removePartial(isoPath)
		return common.FormatError(common.ErrFailedToWriteSector, err)
	}

	common.LogDebug(common.InfoSectorsCopied, sectors, sectors*int64(common.CDDataSize))
	common.LogInfo(common.InfoBinToIso, isoPath)
	return nil
}

// isoToBin wraps the ISO payload in raw sectors and emits the companion
// CUE sheet next to the new binary
func (p *ConversionProcessor) isoToBin(job ConversionJob) error {
	binPath := resolveOutput(job, ".bin")
	cuePath := replaceExt(binPath, ".cue")

	// Both destinations are checked before either is written
	if err := p.Guard.Check(binPath); err != nil {
		return err
	}
	if err := p.Guard.Check(cuePath); err != nil {
		return err
	}
	common.LogDebug(common.DebugJobDispatched, job.InputPath, binPath)
	p.logExpectedSectors(job.InputPath)

	src, err := os.Open(job.InputPath)
	if err != nil {
		return common.FormatError(common.ErrFailedToOpenSource, err)
	}
	defer src.Close()

	dst, err := os.Create(binPath)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateDest, err)
	}

	sectors, err := p.Transcoder.UserToRaw(dst, src)
	if err != nil {
		dst.Close()
		removePartial(binPath)
		return err
	}
	if err := dst.Close(); err != nil {
		removePartial(binPath)
		return common.FormatError(common.ErrFailedToWriteSector, err)
	}

	if err := p.Encoder.EncodeFile(cuePath, filepath.Base(binPath)); err != nil {
		removePartial(cuePath)
		return err
	}

	common.LogDebug(common.InfoSectorsCopied, sectors, sectors*int64(common.CDSectorSize))
	common.LogInfo(common.InfoIsoToBin, binPath, cuePath)
	return nil
}

// logExpectedSectors reports the sector count implied by the source
// size, as a count and as an MSF end address
func (p *ConversionProcessor) logExpectedSectors(path string) {
	if !common.VerboseMode {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	size, err := common.SafeInt64ToUint32(info.Size())
	if err != nil {
		return
	}
	sectors := common.GetSizeInSectors(size)
	common.LogDebug(common.DebugExpectedSectors, sectors, common.LBAToMSF(sectors))
}

// removePartial deletes a destination left incomplete by a failure
func removePartial(path string) {
	if err := os.Remove(path); err != nil {
		common.LogWarn(common.ErrFailedToRemovePartial+": %v", err)
	}
}

// resolveOutput returns the job's explicit output path, or the input
// basename with its extension swapped
func resolveOutput(job ConversionJob, ext string) string {
	if job.OutputPath != "" {
		return job.OutputPath
	}
	return replaceExt(job.InputPath, ext)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Dispatcher is the per-job contract shared by the CUE/ISO processor
// and the CHD bridge
type Dispatcher interface {
	Dispatch(job ConversionJob) JobResult
}

// RunBatch processes jobs through d and returns one result per job, in
// job order. Failures are logged and collected; when stopOnError is
// set, processing stops at the first failure and the returned slice is
// truncated at that job.
//
// With workers > 1 jobs run on a bounded goroutine pool. Jobs share no
// state, so this is safe as long as distinct jobs do not name the same
// destination; overwrite decisions themselves are serialized by the
// guard. stopOnError forces sequential execution, since "first" is
// only meaningful in job order.
func RunBatch(d Dispatcher, jobs []ConversionJob, workers int, stopOnError bool) []JobResult {
	if stopOnError || workers <= 1 {
		results := make([]JobResult, 0, len(jobs))
		for _, job := range jobs {
			result := d.Dispatch(job)
			logResult(result)
			results = append(results, result)
			if stopOnError && result.Err != nil {
				break
			}
		}
		return results
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]JobResult, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = d.Dispatch(jobs[i])
				logResult(results[i])
			}
		}()
	}
	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

// logResult emits the single diagnostic line for a failed job
func logResult(result JobResult) {
	if result.Err != nil {
		common.LogError("%s: %v", result.Job.InputPath, result.Err)
	}
}

// FailureCount counts the failed jobs in a batch result
func FailureCount(results []JobResult) int {
	count := 0
	for _, r := range results {
		if r.Err != nil {
			count++
		}
	}
	return count
}

// SummarizeBatch converts a batch result into a single error suitable
// for a CLI exit status, or nil when every job succeeded or was skipped
func SummarizeBatch(results []JobResult) error {
	if failed := FailureCount(results); failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}
