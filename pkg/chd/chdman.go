// Package chd bridges disc images to the CHD container format by
// driving MAME's chdman executable. The container itself is opaque:
// this package only knows how to hand chdman a source and destination
// path and report whether it succeeded. Installing chdman is out of
// scope; a missing executable is reported, never fixed.
package chd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrToolUnavailable means the chdman executable could not be found
var ErrToolUnavailable = errors.New("chdman not found in PATH")

// DefaultBinary is the executable name looked up when none is configured
const DefaultBinary = "chdman"

// Runner executes an external command. Injected so tests never spawn
// real processes.
type Runner func(name string, args ...string) error

// Codec is the capability the conversion core requires from the
// compression collaborator
type Codec interface {
	Compress(src, dst string) error
	Extract(src, dst string) error
}

// ChdmanCodec implements Codec by invoking chdman as a subprocess
type ChdmanCodec struct {
	Binary string
	Run    Runner
}

// NewChdmanCodec locates the chdman executable and returns a codec
// bound to it. binary may be empty, a bare name resolved against PATH,
// or an explicit path.
func NewChdmanCodec(binary string) (*ChdmanCodec, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: install MAME tools to get %q", ErrToolUnavailable, binary)
	}
	return &ChdmanCodec{Binary: path, Run: runCommand}, nil
}

// runCommand is the default Runner; chdman's own progress output goes
// straight to the terminal
func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Compress produces a CHD container from a CUE, ISO or BIN image
func (c *ChdmanCodec) Compress(src, dst string) error {
	if err := c.Run(c.Binary, "createcd", "-i", src, "-o", dst); err != nil {
		return fmt.Errorf("chdman createcd failed: %w", err)
	}
	return nil
}

// Extract produces a CUE+BIN pair from a CHD container
func (c *ChdmanCodec) Extract(src, dst string) error {
	if err := c.Run(c.Binary, "extractcd", "-i", src, "-o", dst); err != nil {
		return fmt.Errorf("chdman extractcd failed: %w", err)
	}
	return nil
}
