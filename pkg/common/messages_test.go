// Package common provides tests for message and logging functionality
package common

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

func TestSetVerboseMode(t *testing.T) {
	SetVerboseMode(true)
	if !VerboseMode {
		t.Error("SetVerboseMode(true) should enable verbose mode")
	}

	SetVerboseMode(false)
	if VerboseMode {
		t.Error("SetVerboseMode(false) should disable verbose mode")
	}
}

func TestLogDebug_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	SetVerboseMode(true)
	defer SetVerboseMode(false)

	LogDebug("Copied %d sectors", 42)

	output := buf.String()
	if !strings.Contains(output, "Copied 42 sectors") {
		t.Errorf("LogDebug output should contain formatted message, got: %q", output)
	}
	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("LogDebug output should carry the [DEBUG] prefix, got: %q", output)
	}
}

func TestLogDebug_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	SetVerboseMode(false)

	LogDebug("This should not appear")

	if buf.String() != "" {
		t.Errorf("LogDebug should be silent when verbose mode is disabled, got: %q", buf.String())
	}
}

func TestLogLevels(t *testing.T) {
	testCases := []struct {
		name       string
		logFn      func(string, ...interface{})
		wantPrefix string
	}{
		{"info", LogInfo, "[INFO]"},
		{"warn", LogWarn, "[WARN]"},
		{"error", LogError, "[ERROR]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			tc.logFn("converted %s", "game.iso")

			output := buf.String()
			if !strings.Contains(output, tc.wantPrefix) {
				t.Errorf("output should carry %q, got: %q", tc.wantPrefix, output)
			}
			if !strings.Contains(output, "converted game.iso") {
				t.Errorf("output should contain formatted message, got: %q", output)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	base := errors.New("permission denied")
	err := FormatError(ErrFailedToOpenSource, base)
	if err == nil {
		t.Fatal("FormatError() returned nil")
	}
	if !errors.Is(err, base) {
		t.Error("FormatError() should wrap the underlying error")
	}
	if !strings.Contains(err.Error(), ErrFailedToOpenSource) {
		t.Errorf("FormatError() = %q, should contain the base message", err.Error())
	}

	err = FormatError(ErrFailedToReadSector, "raw details")
	if !strings.Contains(err.Error(), "raw details") {
		t.Errorf("FormatError() = %q, should contain the details", err.Error())
	}
}
