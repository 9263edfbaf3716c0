package pkg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// CueFileDecoder implements the CueDecoder interface.
//
// The scan is deliberately a minimal single pass, not a general CUE
// grammar: it accepts exactly the single-FILE, single-TRACK, MODE1
// shape used by data discs and rejects everything else.
type CueFileDecoder struct{}

// NewCueDecoder creates a new CUE sheet decoder instance
func NewCueDecoder() *CueFileDecoder {
	return &CueFileDecoder{}
}

// Decode scans a CUE sheet line by line and extracts the referenced
// binary file name and the sector layout of its data track
func (d *CueFileDecoder) Decode(reader io.Reader) (*CueDescriptor, error) {
	var binFileName string
	mode := ModeUnknown

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		upper := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(upper, "FILE"):
			// The file name keeps its original case; only keywords are
			// matched case-insensitively
			name, ok := firstQuoted(line)
			if !ok {
				return nil, fmt.Errorf("%w: FILE line has no quoted file name", ErrInvalidCue)
			}
			binFileName = name

		case strings.HasPrefix(upper, "TRACK"):
			if strings.Contains(upper, "AUDIO") {
				return nil, ErrUnsupportedTrack
			}
			switch {
			case strings.Contains(upper, "MODE1/2352"):
				mode = Raw2352
			case strings.Contains(upper, "MODE1/2048"):
				mode = User2048
			default:
				return nil, ErrUnsupportedSectorMode
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, common.FormatError(common.ErrFailedToParseCue, err)
	}

	if binFileName == "" || mode == ModeUnknown {
		return nil, ErrInvalidCue
	}

	common.LogDebug(common.DebugCueDescriptor, binFileName, mode.SectorSize())

	return &CueDescriptor{BinFileName: binFileName, Mode: mode}, nil
}

// DecodeFile opens and decodes the CUE sheet at path
func (d *CueFileDecoder) DecodeFile(path string) (*CueDescriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToOpenSource, err)
	}
	defer file.Close()

	descriptor, err := d.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descriptor, nil
}

// firstQuoted returns the content of the first double-quoted substring
func firstQuoted(line string) (string, bool) {
	open := strings.IndexByte(line, '"')
	if open < 0 {
		return "", false
	}
	end := strings.IndexByte(line[open+1:], '"')
	if end < 0 {
		return "", false
	}
	return line[open+1 : open+1+end], true
}
