package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/byte-runner/internal/core"
)

type styleKey struct {
	color core.Color
	bold  bool
}

// styleCache maps cell attributes to lipgloss styles. Colours are true
// colour, so the set is open and styles are built on first use.
type styleCache map[styleKey]lipgloss.Style

func (sc styleCache) style(c core.Cell) lipgloss.Style {
	key := styleKey{color: c.Color, bold: c.Bold}
	if st, ok := sc[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !c.Color.IsDefault() {
		st = st.Foreground(lipgloss.Color(c.Color.Hex()))
	}
	if c.Bold {
		st = st.Bold(true)
	}
	sc[key] = st
	return st
}

var defaultStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same attributes to minimize ANSI escape
// sequences. It is not safe for concurrent use; SSH sessions use their own
// Renderer.
func RenderScreen(s *core.Screen) string {
	return defaultStyles.render(s)
}

func (sc styleCache) render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color.IsDefault() && !start.Bold {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sc.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer turns screens into strings with its own style cache.
type Renderer struct {
	styles styleCache
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: styleCache{}}
}

// Render converts s to a styled string.
func (r *Renderer) Render(s *core.Screen) string {
	return r.styles.render(s)
}
