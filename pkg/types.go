// Package pkg provides the core conversion engine for optical disc
// images: CUE sheet parsing and writing, and sector-level transcoding
// between raw (2352-byte) and user-data (2048-byte) streams.
package pkg

import (
	"io"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// SectorMode identifies the sector layout of a binary disc image
type SectorMode int

const (
	// ModeUnknown is the zero value; no layout has been determined
	ModeUnknown SectorMode = iota
	// Raw2352 is a full raw MODE1 sector: sync, header, 2048 bytes of
	// user data at offset 16, then EDC/ECC
	Raw2352
	// User2048 is a payload-only sector with no raw envelope
	User2048
)

// SectorSize returns the on-disk size of one sector in this mode
func (m SectorMode) SectorSize() int {
	switch m {
	case Raw2352:
		return common.CDSectorSize
	case User2048:
		return common.CDDataSize
	default:
		return 0
	}
}

func (m SectorMode) String() string {
	switch m {
	case Raw2352:
		return "MODE1/2352"
	case User2048:
		return "MODE1/2048"
	default:
		return "unknown"
	}
}

// CueDescriptor is the fully parsed intent of a CUE sheet: the binary
// image it references and the sector layout of its single data track
type CueDescriptor struct {
	BinFileName string
	Mode        SectorMode
}

// Direction identifies which way a conversion job runs
type Direction int

const (
	DirectionUnknown Direction = iota
	// DirectionRawToUser strips raw sectors down to user data (BIN -> ISO)
	DirectionRawToUser
	// DirectionUserToRaw wraps user data in synthetic raw sectors (ISO -> BIN)
	DirectionUserToRaw
)

// ConversionJob describes one file conversion. OutputPath may be empty,
// in which case the destination is derived from the input basename.
// Jobs are independent: no handles or buffers are shared between them.
type ConversionJob struct {
	InputPath  string
	OutputPath string
	Direction  Direction
}

// JobResult records the outcome of a single job. Skipped is set when
// the input was ignored (unsupported extension) rather than converted.
type JobResult struct {
	Job     ConversionJob
	Skipped bool
	Err     error
}

// CueDecoder interface defines methods for parsing CUE sheets
type CueDecoder interface {
	Decode(reader io.Reader) (*CueDescriptor, error)
	DecodeFile(path string) (*CueDescriptor, error)
}

// CueEncoder interface defines methods for writing CUE sheets
type CueEncoder interface {
	Encode(writer io.Writer, binFileName string) error
	EncodeFile(path string, binFileName string) error
}

// SectorTranscoder interface defines the two stream conversions.
// Both return the number of complete sectors processed.
type SectorTranscoder interface {
	RawToUser(dst io.Writer, src io.Reader, mode SectorMode) (int64, error)
	UserToRaw(dst io.Writer, src io.Reader) (int64, error)
}
