package cli

import (
	"strings"
	"testing"
)

func TestRenderKeyValueLines(t *testing.T) {
	out := renderKeyValueLines([]kvPair{
		{"Framework", "next"},
		{"UI", "shadcn"},
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "Framework:") || !strings.Contains(lines[0], "next") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "UI:") || !strings.Contains(lines[1], "shadcn") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestRenderSuccessCard(t *testing.T) {
	out := renderSuccessCard("Project demo scaffolded", "detail line", "")

	if !strings.Contains(out, "Project demo scaffolded") {
		t.Errorf("title missing: %q", out)
	}
	if !strings.Contains(out, "detail line") {
		t.Errorf("detail missing: %q", out)
	}
}

func TestRenderMarkdownFallsBackToInput(t *testing.T) {
	md := "## Next steps\n\n1. `cd demo`\n"
	out := renderMarkdown(md)
	if out == "" {
		t.Fatal("renderMarkdown returned empty output")
	}
	if !strings.Contains(out, "Next steps") {
		t.Errorf("heading text lost: %q", out)
	}
}
