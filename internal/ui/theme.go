// Package ui provides terminal UI components for long-running
// scaffolding steps: spinners and progress bars with a plain-text
// fallback for non-TTY environments.
package ui

import "os"

// ColorPalette holds the hex colors used by interactive components.
type ColorPalette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the palette with the NoColor switch.
type Theme struct {
	Colors  ColorPalette
	NoColor bool
}

// NewTheme creates the default theme. NO_COLOR in the environment
// disables colored output.
func NewTheme() *Theme {
	return &Theme{
		Colors: ColorPalette{
			Primary:   "#22D3EE",
			Secondary: "#0E7490",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// Progress creates spinners and progress bars.
type Progress interface {
	Start(title string, total int) ProgressBar
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
