package pkg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// OverwritePolicy controls what happens when a destination file already
// exists before a conversion writes to it
type OverwritePolicy int

const (
	// OverwriteFail aborts the job when the destination exists (default)
	OverwriteFail OverwritePolicy = iota
	// OverwriteForce always overwrites
	OverwriteForce
	// OverwritePrompt asks once per destination path; a negative or
	// empty answer behaves like OverwriteFail
	OverwritePrompt
)

// ParseOverwritePolicy maps the config/CLI spelling to a policy value
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return OverwriteFail, nil
	case "force":
		return OverwriteForce, nil
	case "ask", "prompt":
		return OverwritePrompt, nil
	default:
		return OverwriteFail, fmt.Errorf("unknown overwrite policy %q (want fail, force or ask)", s)
	}
}

// Confirm answers whether path may be overwritten. Injected so the core
// never reads real input and tests never block.
type Confirm func(path string) bool

// OverwriteGuard applies the overwrite policy before any destination
// byte is written. Decisions are serialized and cached per path, so
// concurrent jobs never race on the same destination and a prompt is
// shown at most once per path.
type OverwriteGuard struct {
	Policy  OverwritePolicy
	Confirm Confirm

	mu        sync.Mutex
	decisions map[string]bool
}

// NewOverwriteGuard creates a guard for the given policy. confirm may
// be nil unless the policy is OverwritePrompt.
func NewOverwriteGuard(policy OverwritePolicy, confirm Confirm) *OverwriteGuard {
	return &OverwriteGuard{
		Policy:    policy,
		Confirm:   confirm,
		decisions: make(map[string]bool),
	}
}

// Check returns nil when path may be written. When the destination
// exists and the policy denies it, the error wraps
// ErrDestinationExists and the destination is left untouched.
func (g *OverwriteGuard) Check(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	switch g.Policy {
	case OverwriteForce:
		return nil
	case OverwritePrompt:
		allowed, asked := g.decisions[path]
		if !asked {
			allowed = g.Confirm != nil && g.Confirm(path)
			g.decisions[path] = allowed
		}
		if allowed {
			common.LogDebug(common.DebugOverwriteGranted, path)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDestinationExists, path)
	default:
		return fmt.Errorf("%w: %s (use -f or -a)", ErrDestinationExists, path)
	}
}

// StdinConfirm builds a Confirm that asks an interactive yes/no
// question on out and reads the answer from in, re-asking until the
// answer is recognizable. Empty input counts as no.
func StdinConfirm(in io.Reader, out io.Writer) Confirm {
	reader := bufio.NewReader(in)
	return func(path string) bool {
		for {
			fmt.Fprintf(out, "Overwrite %q? [y/N]: ", path)
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return false
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
				return true
			case "n", "no", "":
				return false
			}
			if err != nil {
				return false
			}
		}
	}
}
