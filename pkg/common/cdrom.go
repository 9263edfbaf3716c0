// Package common provides common utilities for CD-ROM image operations.
// This file contains sector layout constants and MSF/sector math.
package common

import "fmt"

// Sector layout constants for MODE1 data CDs
const (
	CDSectorSize = 2352 // Full raw CD sector size
	CDDataSize   = 2048 // User data portion of a MODE1 sector
	CDDataOffset = 16   // User data starts after sync(12) + header(4)
	CDSyncSize   = 12   // Sync pattern size
	CDHeaderSize = 4    // Header size (3 address bytes + 1 mode byte)
)

// LBAToMSF converts LBA (Logical Block Address) to MSF (Minutes:Seconds:Frames) format
// LBA to MSF conversion: LBA + 150 (pregap)
func LBAToMSF(lba uint32) string {
	totalFrames := lba + 150

	minutes := totalFrames / (60 * 75)
	seconds := (totalFrames % (60 * 75)) / 75
	frames := totalFrames % 75

	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, frames)
}

// GetSizeInSectors calculates the number of sectors needed for a given size
// in bytes, using the 2048-byte user data sector size
func GetSizeInSectors(sizeBytes uint32) uint32 {
	return (sizeBytes + CDDataSize - 1) / CDDataSize
}
