// Package notify triggers the out-of-process notification helper. The
// helper reads the persisted selection file itself; this package only
// launches it and reports success, failure, or timeout.
package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Timeout is the fixed wait limit for the notification helper.
const Timeout = 30 * time.Second

// ErrTimedOut indicates the helper did not finish within Timeout.
var ErrTimedOut = errors.New("notification command timed out")

// Runner invokes the configured notification command.
type Runner struct {
	command string
	log     zerolog.Logger
}

// NewRunner creates a Runner for the given shell command line.
func NewRunner(command string, log zerolog.Logger) *Runner {
	return &Runner{command: command, log: log}
}

// Send runs the notification command and waits for it to finish. The
// command runs through the shell so the configured line may carry
// arguments.
func (r *Runner) Send(ctx context.Context) error {
	if strings.TrimSpace(r.command) == "" {
		return fmt.Errorf("no notification command configured")
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", r.command)
	out, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		r.log.Warn().Str("command", r.command).Msg("notification command timed out")
		return ErrTimedOut
	}
	if err != nil {
		return fmt.Errorf("notification command failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	r.log.Debug().Str("command", r.command).Msg("notification sent")
	return nil
}
