// Package pkg provides tests for sector stream transcoding
package pkg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// rawSector builds one 2352-byte raw sector whose payload region is
// filled with fill; the envelope bytes carry a distinct marker so tests
// can prove they were discarded
func rawSector(fill byte) []byte {
	sector := make([]byte, common.CDSectorSize)
	for i := range sector {
		sector[i] = 0xEE
	}
	for i := common.CDDataOffset; i < common.CDDataOffset+common.CDDataSize; i++ {
		sector[i] = fill
	}
	return sector
}

func TestRawToUser_TwoSectorScenario(t *testing.T) {
	// 2 raw sectors (4704 bytes): payload 0x01 then 0x02, envelope
	// zeros, must become exactly 4096 bytes of 0x01 then 0x02
	input := make([]byte, 2*common.CDSectorSize)
	for i := common.CDDataOffset; i < common.CDDataOffset+common.CDDataSize; i++ {
		input[i] = 0x01
		input[common.CDSectorSize+i] = 0x02
	}

	var out bytes.Buffer
	sectors, err := NewTranscoder().RawToUser(&out, bytes.NewReader(input), Raw2352)
	if err != nil {
		t.Fatalf("RawToUser() failed: %v", err)
	}
	if sectors != 2 {
		t.Errorf("RawToUser() sectors = %d, want 2", sectors)
	}
	if out.Len() != 2*common.CDDataSize {
		t.Fatalf("RawToUser() wrote %d bytes, want %d", out.Len(), 2*common.CDDataSize)
	}
	for i, b := range out.Bytes() {
		want := byte(0x01)
		if i >= common.CDDataSize {
			want = 0x02
		}
		if b != want {
			t.Fatalf("output byte %d = 0x%02X, want 0x%02X", i, b, want)
		}
	}
}

func TestRawToUser_Mapping(t *testing.T) {
	// Output byte k*2048+i must equal input byte k*2352+16+i
	const n = 3
	input := make([]byte, n*common.CDSectorSize)
	for i := range input {
		input[i] = byte(i * 7)
	}

	var out bytes.Buffer
	sectors, err := NewTranscoder().RawToUser(&out, bytes.NewReader(input), Raw2352)
	if err != nil {
		t.Fatalf("RawToUser() failed: %v", err)
	}
	if sectors != n {
		t.Errorf("RawToUser() sectors = %d, want %d", sectors, n)
	}

	got := out.Bytes()
	for k := 0; k < n; k++ {
		for i := 0; i < common.CDDataSize; i++ {
			want := input[k*common.CDSectorSize+common.CDDataOffset+i]
			if got[k*common.CDDataSize+i] != want {
				t.Fatalf("sector %d byte %d = 0x%02X, want 0x%02X", k, i, got[k*common.CDDataSize+i], want)
			}
		}
	}
}

func TestRawToUser_User2048Verbatim(t *testing.T) {
	input := make([]byte, 2*common.CDDataSize)
	for i := range input {
		input[i] = byte(i)
	}

	var out bytes.Buffer
	sectors, err := NewTranscoder().RawToUser(&out, bytes.NewReader(input), User2048)
	if err != nil {
		t.Fatalf("RawToUser() failed: %v", err)
	}
	if sectors != 2 {
		t.Errorf("RawToUser() sectors = %d, want 2", sectors)
	}
	if !bytes.Equal(out.Bytes(), input) {
		t.Error("User2048 input should be copied verbatim")
	}
}

func TestRawToUser_UnknownMode(t *testing.T) {
	var out bytes.Buffer
	_, err := NewTranscoder().RawToUser(&out, bytes.NewReader(nil), ModeUnknown)
	if err == nil {
		t.Error("RawToUser() should fail for an unknown sector mode")
	}
}

func TestRawToUser_ShortFinalChunk(t *testing.T) {
	// One full sector plus 100 trailing bytes
	input := append(rawSector(0x01), make([]byte, 100)...)

	t.Run("lenient default drops the tail", func(t *testing.T) {
		var out bytes.Buffer
		sectors, err := NewTranscoder().RawToUser(&out, bytes.NewReader(input), Raw2352)
		if err != nil {
			t.Fatalf("RawToUser() failed: %v", err)
		}
		if sectors != 1 {
			t.Errorf("RawToUser() sectors = %d, want 1", sectors)
		}
		if out.Len() != common.CDDataSize {
			t.Errorf("RawToUser() wrote %d bytes, want %d", out.Len(), common.CDDataSize)
		}
	})

	t.Run("strict mode rejects", func(t *testing.T) {
		transcoder := &BinTranscoder{StrictSize: true}
		var out bytes.Buffer
		_, err := transcoder.RawToUser(&out, bytes.NewReader(input), Raw2352)
		if !errors.Is(err, ErrTruncatedSector) {
			t.Errorf("RawToUser() error = %v, want ErrTruncatedSector", err)
		}
	})
}

func TestUserToRaw_FrameLayout(t *testing.T) {
	payload := make([]byte, 2*common.CDDataSize)
	for i := range payload {
		payload[i] = byte(i%251 + 1) // never zero, to expose padding leaks
	}

	var out bytes.Buffer
	sectors, err := NewTranscoder().UserToRaw(&out, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("UserToRaw() failed: %v", err)
	}
	if sectors != 2 {
		t.Errorf("UserToRaw() sectors = %d, want 2", sectors)
	}
	if out.Len() != 2*common.CDSectorSize {
		t.Fatalf("UserToRaw() wrote %d bytes, want %d", out.Len(), 2*common.CDSectorSize)
	}

	got := out.Bytes()
	for k := 0; k < 2; k++ {
		frame := got[k*common.CDSectorSize : (k+1)*common.CDSectorSize]
		for i := 0; i < common.CDDataOffset; i++ {
			if frame[i] != 0 {
				t.Fatalf("frame %d sync/header byte %d = 0x%02X, want 0x00", k, i, frame[i])
			}
		}
		if !bytes.Equal(frame[common.CDDataOffset:common.CDDataOffset+common.CDDataSize], payload[k*common.CDDataSize:(k+1)*common.CDDataSize]) {
			t.Fatalf("frame %d payload does not match source", k)
		}
		for i := common.CDDataOffset + common.CDDataSize; i < common.CDSectorSize; i++ {
			if frame[i] != 0 {
				t.Fatalf("frame %d ECC byte %d = 0x%02X, want 0x00", k, i, frame[i])
			}
		}
	}
}

func TestUserToRaw_ShortFinalChunk(t *testing.T) {
	// One full payload then 100 bytes: a second full frame is emitted
	// with the partial payload zero-padded
	payload := make([]byte, common.CDDataSize+100)
	for i := range payload {
		payload[i] = 0xAB
	}

	var out bytes.Buffer
	sectors, err := NewTranscoder().UserToRaw(&out, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("UserToRaw() failed: %v", err)
	}
	if sectors != 2 {
		t.Errorf("UserToRaw() sectors = %d, want 2", sectors)
	}
	if out.Len() != 2*common.CDSectorSize {
		t.Fatalf("UserToRaw() wrote %d bytes, want %d", out.Len(), 2*common.CDSectorSize)
	}

	last := out.Bytes()[common.CDSectorSize:]
	for i := 0; i < 100; i++ {
		if last[common.CDDataOffset+i] != 0xAB {
			t.Fatalf("partial payload byte %d = 0x%02X, want 0xAB", i, last[common.CDDataOffset+i])
		}
	}
	for i := common.CDDataOffset + 100; i < common.CDSectorSize; i++ {
		if last[i] != 0 {
			t.Fatalf("padding byte %d = 0x%02X, want 0x00 (stale payload leaked)", i, last[i])
		}
	}
}

func TestUserToRaw_Strict(t *testing.T) {
	transcoder := &BinTranscoder{StrictSize: true}
	var out bytes.Buffer
	_, err := transcoder.UserToRaw(&out, bytes.NewReader(make([]byte, common.CDDataSize+1)))
	if !errors.Is(err, ErrTruncatedSector) {
		t.Errorf("UserToRaw() error = %v, want ErrTruncatedSector", err)
	}
}

// Only the payload survives the round trip: the envelope is discarded
// on read and reconstructed as zeros on synthesis
func TestRoundTrip_PayloadIdentical(t *testing.T) {
	payload := make([]byte, 4*common.CDDataSize)
	for i := range payload {
		payload[i] = byte(i * 13)
	}

	transcoder := NewTranscoder()

	var raw bytes.Buffer
	if _, err := transcoder.UserToRaw(&raw, bytes.NewReader(payload)); err != nil {
		t.Fatalf("UserToRaw() failed: %v", err)
	}

	var back bytes.Buffer
	if _, err := transcoder.RawToUser(&back, bytes.NewReader(raw.Bytes()), Raw2352); err != nil {
		t.Fatalf("RawToUser() failed: %v", err)
	}

	if !bytes.Equal(back.Bytes(), payload) {
		t.Error("round trip did not reproduce the payload")
	}
}

// failWriter fails after accepting limit bytes
type failWriter struct {
	limit int
	wrote int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.wrote+len(p) > w.limit {
		return 0, errors.New("disk full")
	}
	w.wrote += len(p)
	return len(p), nil
}

func TestRawToUser_WriteFailure(t *testing.T) {
	input := append(rawSector(0x01), rawSector(0x02)...)
	w := &failWriter{limit: common.CDDataSize}
	sectors, err := NewTranscoder().RawToUser(w, bytes.NewReader(input), Raw2352)
	if err == nil {
		t.Fatal("RawToUser() should surface the write failure")
	}
	if sectors != 1 {
		t.Errorf("RawToUser() sectors = %d, want 1 before the failure", sectors)
	}
}
