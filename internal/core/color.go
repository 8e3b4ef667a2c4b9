package core

import (
	"fmt"
	"strings"
)

// Color is an RGB colour with components in [0, 1].
// The zero value means "terminal default" when used for a screen cell.
type Color struct {
	R, G, B float64
}

// RGB builds a Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// IsDefault reports whether c is the zero colour.
func (c Color) IsDefault() bool {
	return c == Color{}
}

// Hex formats c as #rrggbb for true-colour terminals.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ParseColor parses a #rrggbb string.
func ParseColor(s string) (Color, error) {
	var r, g, b uint8
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}

func channel(v float64) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}

// Palette used by the game bodies and the HUD.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(240, 240, 240)
	ColorGray    = RGB(120, 120, 130)
	ColorRed     = RGB(230, 60, 60)
	ColorOrange  = RGB(255, 150, 40)
	ColorYellow  = RGB(250, 215, 60)
	ColorGreen   = RGB(70, 210, 110)
	ColorCyan    = RGB(80, 210, 230)
	ColorBlue    = RGB(70, 110, 230)
	ColorMagenta = RGB(210, 90, 220)
	ColorNight   = RGB(25, 25, 45)
	ColorFloor   = RGB(90, 70, 60)
)
