package pkg

import (
	"fmt"
	"io"
	"os"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// CueFileEncoder implements the CueEncoder interface. It emits the
// minimal companion sheet for a freshly synthesized raw binary: one
// FILE declaration and one MODE1/2352 data track starting at index 0.
type CueFileEncoder struct{}

// NewCueEncoder creates a new CUE sheet encoder instance
func NewCueEncoder() *CueFileEncoder {
	return &CueFileEncoder{}
}

// Encode writes the three-line CUE template for binFileName. The sheet
// always declares MODE1/2352, matching what the transcoder synthesizes.
func (e *CueFileEncoder) Encode(writer io.Writer, binFileName string) error {
	_, err := fmt.Fprintf(writer, "FILE %q BINARY\n  TRACK 01 %s\n    INDEX 01 00:00:00\n", binFileName, Raw2352)
	if err != nil {
		return common.FormatError(common.ErrFailedToWriteCue, err)
	}
	return nil
}

// EncodeFile creates the CUE sheet at path. Overwrite policy checks are
// the caller's responsibility; this writes unconditionally.
func (e *CueFileEncoder) EncodeFile(path string, binFileName string) error {
	file, err := os.Create(path)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateDest, err)
	}

	if err := e.Encode(file, binFileName); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
