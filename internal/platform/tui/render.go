package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// colorStyles maps the farm palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorSoil:     lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorDeadSoil: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorSeedling: lipgloss.NewStyle().Foreground(lipgloss.Color("193")),
	core.ColorGrowing:  lipgloss.NewStyle().Foreground(lipgloss.Color("113")),
	core.ColorMature:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorReady:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorPlague:   lipgloss.NewStyle().Foreground(lipgloss.Color("129")).Bold(true),
	core.ColorCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorHP:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMoney:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
