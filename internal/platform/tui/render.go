package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// colorCodes maps core.Color to ANSI 256 colour codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPink:          "218",
	core.ColorGold:          "220",
	core.ColorSky:           "24",
	core.ColorRust:          "130",
	core.ColorMint:          "121",
	core.ColorNeon:          "201",
	core.ColorNight:         "234",
	core.ColorDusk:          "53",
	core.ColorSand:          "94",
	core.ColorStorm:         "238",
}

type stylePair struct{ fg, bg core.Color }

// styleCache holds one lipgloss style per foreground/background pair.
var styleCache sync.Map

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := stylePair{fg, bg}
	if s, ok := styleCache.Load(key); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle()
	if code, ok := colorCodes[fg]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code, ok := colorCodes[bg]; ok {
		s = s.Background(lipgloss.Color(code))
	}
	styleCache.Store(key, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// The screen background, if any, tints every cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	bg := s.Background()

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
