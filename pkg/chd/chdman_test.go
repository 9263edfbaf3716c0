// Package chd provides tests for the chdman collaborator boundary
package chd

import (
	"errors"
	"testing"
)

// recordingRunner captures invocations instead of spawning processes
type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) run(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestChdmanCodec_Compress(t *testing.T) {
	runner := &recordingRunner{}
	codec := &ChdmanCodec{Binary: "chdman", Run: runner.run}

	if err := codec.Compress("game.cue", "game.chd"); err != nil {
		t.Fatalf("Compress() failed: %v", err)
	}

	want := []string{"chdman", "createcd", "-i", "game.cue", "-o", "game.chd"}
	if len(runner.calls) != 1 {
		t.Fatalf("Run called %d times, want 1", len(runner.calls))
	}
	for i, arg := range want {
		if runner.calls[0][i] != arg {
			t.Errorf("arg %d = %q, want %q", i, runner.calls[0][i], arg)
		}
	}
}

func TestChdmanCodec_Extract(t *testing.T) {
	runner := &recordingRunner{}
	codec := &ChdmanCodec{Binary: "chdman", Run: runner.run}

	if err := codec.Extract("game.chd", "game.cue"); err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	want := []string{"chdman", "extractcd", "-i", "game.chd", "-o", "game.cue"}
	for i, arg := range want {
		if runner.calls[0][i] != arg {
			t.Errorf("arg %d = %q, want %q", i, runner.calls[0][i], arg)
		}
	}
}

func TestChdmanCodec_ToolFailure(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exit status 1")}
	codec := &ChdmanCodec{Binary: "chdman", Run: runner.run}

	if err := codec.Compress("game.cue", "game.chd"); err == nil {
		t.Error("Compress() should surface a chdman failure")
	}
	if err := codec.Extract("game.chd", "game.cue"); err == nil {
		t.Error("Extract() should surface a chdman failure")
	}
}

func TestNewChdmanCodec_Missing(t *testing.T) {
	_, err := NewChdmanCodec("definitely-not-a-real-binary-48151623")
	if !errors.Is(err, ErrToolUnavailable) {
		t.Errorf("NewChdmanCodec() error = %v, want ErrToolUnavailable", err)
	}
}
