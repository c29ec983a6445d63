package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

type commandRecorder interface {
	RecordCommand(program string, duration time.Duration, err error)
}

// Runner executes external programs synchronously and captures their output.
type Runner struct {
	logger   *slog.Logger
	recorder commandRecorder
}

// New creates a new command runner. recorder may be nil.
func New(logger *slog.Logger, recorder commandRecorder) *Runner {
	return &Runner{
		logger:   logger,
		recorder: recorder,
	}
}

// Run executes name with args and returns its trimmed stdout. The program is
// started directly, not through a shell. A non-zero exit returns *ExitError
// carrying the captured stderr.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	logger := r.logger.With("component", "runner", "command", commandLine(name, args))

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.DebugContext(ctx, "running command")

	start := time.Now()
	err := cmd.Run()

	if r.recorder != nil {
		r.recorder.RecordCommand(name, time.Since(start), err)
	}

	if err != nil {
		exitErr := &ExitError{
			Command:  commandLine(name, args),
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}

		var execExitErr *exec.ExitError
		if errors.As(err, &execExitErr) {
			exitErr.ExitCode = execExitErr.ExitCode()
		}

		logger.ErrorContext(ctx, "command failed",
			"exitCode", exitErr.ExitCode,
			"stderr", exitErr.Stderr,
			"reason", err,
		)

		return "", exitErr
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ExitError is returned when a command cannot be started or exits non-zero.
type ExitError struct {
	Command string
	// ExitCode is -1 when the process did not exit normally.
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}

	return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
