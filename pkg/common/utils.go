package common

import (
	"fmt"
	"io"
)

// ReadSector reads one sector of the given size into buf[:size].
// Returns the number of bytes actually read:
//   - n == size: a complete sector
//   - n == 0 with io.EOF: clean end of stream
//   - 0 < n < size: a short final chunk (err is nil so the caller
//     decides whether to tolerate or reject it)
func ReadSector(reader io.Reader, buf []byte, size int) (int, error) {
	n, err := io.ReadFull(reader, buf[:size])
	if err == io.EOF {
		return 0, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return n, nil
	}
	if err != nil {
		return n, err
	}
	return n, nil
}

// WriteFull writes the whole of data, treating a short write as an error
func WriteFull(writer io.Writer, data []byte) error {
	n, err := writer.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("expected to write %d bytes, wrote %d", len(data), n)
	}
	return nil
}
