// Package cli provides the Cobra command tree and dependency wiring
// for the webstrap CLI. This file defines the Dependencies struct
// (Composition Root) that wires the domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/webstrap-cli/webstrap/internal/config"
	"github.com/webstrap-cli/webstrap/internal/runner"
	"github.com/webstrap-cli/webstrap/internal/update"
)

// Dependencies holds the domain-level services used by CLI commands.
// This is the only place where concrete types are instantiated and
// wired together; commands access them through interfaces.
type Dependencies struct {
	Config        *config.Manager
	Invoker       runner.Invoker
	UpdateChecker update.Checker
	Logger        *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the domain dependencies. It should
// be called once during application startup. The user config is loaded
// here so every command sees the same defaults.
func InitDependencies() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Config:  config.NewManager(),
		Invoker: runner.NewInvoker(logger),
		Logger:  logger,
	}

	configDir, err := config.DefaultDir()
	if err == nil {
		if _, err := deps.Config.Load(configDir); err != nil {
			logger.Warn("failed to load user config", "error", err)
		}
	}

	if cfg := deps.Config.Get(); cfg != nil && cfg.System.LogLevel == "debug" {
		deps.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		deps.Invoker = runner.NewInvoker(deps.Logger)
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureUpdate lazily initializes the release checker. Subsequent
// calls are no-ops once the checker exists.
func (d *Dependencies) EnsureUpdate() {
	if d.UpdateChecker != nil {
		return
	}

	apiURL := os.Getenv("WEBSTRAP_UPDATE_URL")
	if apiURL == "" {
		apiURL = update.DefaultAPIURL
	}
	d.UpdateChecker = update.NewChecker(apiURL, nil)
}
