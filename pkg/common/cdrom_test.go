// Package common provides tests for CD-ROM math utilities
package common

import "testing"

func TestLBAToMSF(t *testing.T) {
	testCases := []struct {
		name string
		lba  uint32
		want string
	}{
		{"zero includes pregap", 0, "00:02:00"},
		{"one second worth", 75, "00:03:00"},
		{"one minute boundary", 4350, "01:00:00"},
		{"frames remainder", 151, "00:04:01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LBAToMSF(tc.lba); got != tc.want {
				t.Errorf("LBAToMSF(%d) = %q, want %q", tc.lba, got, tc.want)
			}
		})
	}
}

func TestGetSizeInSectors(t *testing.T) {
	testCases := []struct {
		name string
		size uint32
		want uint32
	}{
		{"empty", 0, 0},
		{"one byte", 1, 1},
		{"exactly one sector", 2048, 1},
		{"one byte over", 2049, 2},
		{"many sectors", 10 * 2048, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetSizeInSectors(tc.size); got != tc.want {
				t.Errorf("GetSizeInSectors(%d) = %d, want %d", tc.size, got, tc.want)
			}
		})
	}
}

func TestSectorConstants(t *testing.T) {
	if CDSectorSize != CDSyncSize+CDHeaderSize+CDDataSize+288 {
		t.Error("raw sector layout constants are inconsistent")
	}
	if CDDataOffset != CDSyncSize+CDHeaderSize {
		t.Error("user data offset must follow sync and header")
	}
}
