package pkg

import "errors"

// Conversion error taxonomy. All of these are fatal to the job that
// raised them and to nothing else; batch aggregation is decided by the
// caller. Match with errors.Is.
var (
	// ErrInvalidCue means the sheet lacked a FILE or TRACK declaration
	ErrInvalidCue = errors.New("invalid or unsupported CUE file")

	// ErrUnsupportedTrack means the sheet declares an audio track
	ErrUnsupportedTrack = errors.New("audio tracks are not supported")

	// ErrUnsupportedSectorMode means the TRACK line names a mode other
	// than MODE1/2352 or MODE1/2048
	ErrUnsupportedSectorMode = errors.New("unsupported track mode")

	// ErrDestinationExists means the overwrite policy denied the write
	ErrDestinationExists = errors.New("destination already exists")

	// ErrTruncatedSector is reported in strict mode when the input size
	// is not a multiple of the sector size
	ErrTruncatedSector = errors.New("input is not a multiple of the sector size")
)
