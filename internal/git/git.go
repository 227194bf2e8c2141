// Package git wraps the git binary for repository bootstrap. The
// scaffolder only needs init, stage-all, and an initial commit, all
// sequential.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when the git binary is not on PATH.
var ErrGitNotFound = errors.New("git not found on PATH")

// Client runs git commands in a fixed working directory.
type Client struct {
	workDir string
}

// NewClient creates a Client for the given repository root. It fails
// fast when git is not installed.
func NewClient(workDir string) (*Client, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, ErrGitNotFound
	}
	return &Client{workDir: workDir}, nil
}

// run executes a git subcommand and returns its combined output.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.workDir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}

// Init initializes a repository with main as the default branch. A
// pre-existing repository is not an error.
func (c *Client) Init(ctx context.Context) error {
	if c.IsRepository(ctx) {
		return nil
	}
	_, err := c.run(ctx, "init", "--initial-branch=main")
	return err
}

// IsRepository reports whether workDir is inside a git work tree.
func (c *Client) IsRepository(ctx context.Context) bool {
	out, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// StageAll stages every file under the repository root.
func (c *Client) StageAll(ctx context.Context) error {
	_, err := c.run(ctx, "add", "-A")
	return err
}

// Commit creates a commit with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "-m", message)
	return err
}
