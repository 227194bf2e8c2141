package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent webstrap-themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// PrintBanner prints the webstrap startup banner.
func PrintBanner(version string) {
	banner := cliPrimary.Bold(true).Render("webstrap") +
		cliMuted.Render(" "+version)
	fmt.Println()
	fmt.Println(banner)
	fmt.Println(cliMuted.Render("React and Next.js project scaffolding"))
	fmt.Println()
}

// kvPair is a label/value line for summary output.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cliMuted.Render(fmt.Sprintf("%-*s", width+2, p.key+":")))
		b.WriteString(p.value)
	}
	return b.String()
}

// renderSuccessCard renders a bordered success box with optional detail
// lines below the title.
func renderSuccessCard(title string, details ...string) string {
	content := symSuccess() + " " + cliSuccess.Bold(true).Render(title)
	for _, d := range details {
		if d != "" {
			content += "\n" + d
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
	return box.Render(content)
}

// renderMarkdown renders markdown for terminal display. Falls back to
// the raw text when glamour cannot initialize (no TTY, unknown term).
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
