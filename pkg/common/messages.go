package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToOpenSource      = "failed to open source file"
	ErrFailedToCreateDest      = "failed to create destination file"
	ErrFailedToReadSector      = "failed to read sector"
	ErrFailedToWriteSector     = "failed to write sector"
	ErrFailedToParseCue        = "failed to parse CUE sheet"
	ErrFailedToWriteCue        = "failed to write CUE sheet"
	ErrFailedToCollectInputs   = "failed to collect input files"
	ErrFailedToRemovePartial   = "failed to remove partial destination"
	ErrFailedToLoadConfig      = "failed to load configuration file"
	ErrOutputWithMultipleFiles = "-o can only be used with a single input file"
	ErrRecursiveWithoutDir     = "-r can only be used together with -d"
	ErrNoInputFiles            = "no input files specified"
)

// Info messages
const (
	InfoBinToIso      = "BIN -> ISO: %s"
	InfoIsoToBin      = "ISO -> BIN+CUE: %s, %s"
	InfoToChd         = "-> CHD: %s"
	InfoChdToCue      = "CHD -> CUE/BIN: %s"
	InfoSectorsCopied = "Copied %d sectors (%d bytes)"
)

// Debug messages
const (
	DebugJobDispatched    = "Dispatching %s -> %s"
	DebugCueDescriptor    = "CUE sheet references %q (sector size %d)"
	DebugOverwriteGranted = "Overwrite granted for %s"
	DebugShortFinalChunk  = "Short final chunk of %d bytes treated as end of stream"
	DebugExpectedSectors  = "Source holds %d sectors, end address %s"
)

// Warning messages
const (
	WarnSkippingUnsupported = "Skipping unsupported file: %s"
	WarnNoMatchForPattern   = "No match for pattern: %s"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
