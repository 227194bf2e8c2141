// Package runner shells out to the upstream project generators and the
// package manager. External tools are collaborators: the only contract
// is their exit code, and no timeout is enforced (an interrupt kills
// the whole run).
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// ErrCommandFailed wraps every non-zero exit from an external tool.
var ErrCommandFailed = errors.New("external command failed")

// Invoker runs external commands in a working directory.
type Invoker interface {
	// Run executes name with args in dir, streaming stdio, and returns
	// a wrapped error on non-zero exit.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// execInvoker is the os/exec-backed Invoker.
type execInvoker struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewInvoker creates an Invoker that streams to the process stdio.
func NewInvoker(logger *slog.Logger) Invoker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execInvoker{stdout: os.Stdout, stderr: os.Stderr, logger: logger}
}

// NewInvokerWithOutput creates an Invoker with custom output writers,
// used by tests to capture streamed output.
func NewInvokerWithOutput(stdout, stderr io.Writer, logger *slog.Logger) Invoker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execInvoker{stdout: stdout, stderr: stderr, logger: logger}
}

func (e *execInvoker) Run(ctx context.Context, dir, name string, args ...string) error {
	e.logger.Info("running external command", "cmd", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %v: %v", ErrCommandFailed, name, args, err)
	}
	return nil
}
