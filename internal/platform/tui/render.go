package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/render"
)

// colorStyles maps render.Color to lipgloss styles.
var colorStyles = map[render.Color]lipgloss.Style{
	render.ColorDefault:     lipgloss.NewStyle(),
	render.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	render.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	render.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	render.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	render.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	render.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *render.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[render.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
