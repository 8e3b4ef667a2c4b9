package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/byte-runner/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetCell(2, 0, core.Cell{Rune: 'c', Color: core.ColorRed, Bold: true})
	s.DrawText(1, 2, "xyz", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d has width %d, expected 6", i, w)
		}
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "c") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[2] != " xyz  " {
		t.Errorf("unstyled line = %q, expected plain text", lines[2])
	}
}

func TestStyleCacheReusesStyles(t *testing.T) {
	sc := styleCache{}
	sc.style(core.Cell{Color: core.ColorRed})
	sc.style(core.Cell{Color: core.ColorRed})
	sc.style(core.Cell{Color: core.ColorRed, Bold: true})
	if len(sc) != 2 {
		t.Errorf("cache holds %d styles, expected 2", len(sc))
	}
}

func TestRendererMatchesRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 1, "ok", core.ColorGreen)

	if got, want := NewRenderer().Render(s), RenderScreen(s); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}
