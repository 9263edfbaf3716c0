package pkg

import (
	"fmt"
	"io"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// BinTranscoder implements the SectorTranscoder interface. Both
// directions stream one sector at a time in source order; no buffering
// beyond a single sector is performed.
//
// When StrictSize is false (the default), a final chunk shorter than a
// full sector is tolerated: RawToUser treats it as end of stream and
// UserToRaw pads it into one last full frame. When StrictSize is true,
// such inputs fail with ErrTruncatedSector.
type BinTranscoder struct {
	StrictSize bool
}

// NewTranscoder creates a new sector transcoder instance
func NewTranscoder() *BinTranscoder {
	return &BinTranscoder{}
}

// RawToUser copies the user data region of every sector in src to dst.
// For Raw2352 only bytes [16, 16+2048) of each sector survive; the
// sync, header and EDC/ECC bytes are discarded irreversibly. For
// User2048 sectors are copied verbatim.
func (t *BinTranscoder) RawToUser(dst io.Writer, src io.Reader, mode SectorMode) (int64, error) {
	sectorSize := mode.SectorSize()
	if sectorSize == 0 {
		return 0, fmt.Errorf("cannot transcode from unknown sector mode")
	}

	buf := make([]byte, sectorSize)
	var sectors int64

	for {
		n, err := common.ReadSector(src, buf, sectorSize)
		if err == io.EOF {
			return sectors, nil
		}
		if err != nil {
			return sectors, common.FormatError(common.ErrFailedToReadSector, err)
		}
		if n < sectorSize {
			if t.StrictSize {
				return sectors, fmt.Errorf("%w: %d trailing bytes", ErrTruncatedSector, n)
			}
			common.LogDebug(common.DebugShortFinalChunk, n)
			return sectors, nil
		}

		payload := buf[:common.CDDataSize]
		if mode == Raw2352 {
			payload = buf[common.CDDataOffset : common.CDDataOffset+common.CDDataSize]
		}
		if err := common.WriteFull(dst, payload); err != nil {
			return sectors, common.FormatError(common.ErrFailedToWriteSector, err)
		}
		sectors++
	}
}

// UserToRaw wraps every 2048-byte chunk of src in a zero-filled
// 2352-byte frame with the chunk at offset 16, and writes the frames to
// dst in source order. The synthesized sync/header/ECC regions are
// zeros, not reconstructed values; consumers that validate raw sector
// integrity will reject them even though the user data is correct.
func (t *BinTranscoder) UserToRaw(dst io.Writer, src io.Reader) (int64, error) {
	frame := make([]byte, common.CDSectorSize)
	var sectors int64

	for {
		n, err := common.ReadSector(src, frame[common.CDDataOffset:], common.CDDataSize)
		if err == io.EOF {
			return sectors, nil
		}
		if err != nil {
			return sectors, common.FormatError(common.ErrFailedToReadSector, err)
		}
		if n < common.CDDataSize {
			if t.StrictSize {
				return sectors, fmt.Errorf("%w: %d trailing bytes", ErrTruncatedSector, n)
			}
			common.LogDebug(common.DebugShortFinalChunk, n)
			// Pad the partial payload out to a full frame
			clear(frame[common.CDDataOffset+n : common.CDDataOffset+common.CDDataSize])
		}

		if err := common.WriteFull(dst, frame); err != nil {
			return sectors, common.FormatError(common.ErrFailedToWriteSector, err)
		}
		sectors++

		if n < common.CDDataSize {
			return sectors, nil
		}
	}
}
