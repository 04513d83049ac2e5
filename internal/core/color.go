package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Farm palette. ColorDefault leaves the terminal's own color.
const (
	ColorDefault  Color = iota
	ColorText           // Labels and status text
	ColorDim            // Hints, empty bar segments
	ColorSoil           // Alive empty cell
	ColorDeadSoil       // Cell killed by the plague
	ColorSeedling       // Crop stages, in growth order
	ColorGrowing
	ColorMature
	ColorReady
	ColorPlague   // Agents and their links
	ColorCursor   // Selected cell frame
	ColorHP       // Hit point bars
	ColorProgress // Growth bars
	ColorMoney
	ColorWarning // Game over, rejected commands
)

// String returns the palette name, used in tests and debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorText:
		return "text"
	case ColorDim:
		return "dim"
	case ColorSoil:
		return "soil"
	case ColorDeadSoil:
		return "dead-soil"
	case ColorSeedling:
		return "seedling"
	case ColorGrowing:
		return "growing"
	case ColorMature:
		return "mature"
	case ColorReady:
		return "ready"
	case ColorPlague:
		return "plague"
	case ColorCursor:
		return "cursor"
	case ColorHP:
		return "hp"
	case ColorProgress:
		return "progress"
	case ColorMoney:
		return "money"
	case ColorWarning:
		return "warning"
	default:
		return "unknown"
	}
}
