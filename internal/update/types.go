// Package update checks the GitHub Releases API for newer webstrap
// versions. It only reports availability; installing the new binary is
// left to the user's package manager.
package update

import (
	"context"
	"time"
)

// DefaultAPIURL is the releases endpoint queried by `webstrap update`.
const DefaultAPIURL = "https://api.github.com/repos/webstrap-cli/webstrap/releases/latest"

// VersionInfo describes a published release.
type VersionInfo struct {
	Version string
	Date    time.Time
	URL     string
}

// Checker queries for the latest published release.
type Checker interface {
	CheckLatest(ctx context.Context) (*VersionInfo, error)
	IsUpdateAvailable(ctx context.Context, current string) (bool, *VersionInfo, error)
}
