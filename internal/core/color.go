package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette used by the runner and its screens.
const (
	ColorDefault Color = iota
	ColorPink
	ColorBlue
	ColorPurple
	ColorYellow
	ColorGreen
	ColorRed
	ColorGray
	ColorWhite
)

// ParseColor maps a palette name from configuration to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "pink":
		return ColorPink
	case "blue":
		return ColorBlue
	case "purple":
		return ColorPurple
	case "yellow":
		return ColorYellow
	case "green":
		return ColorGreen
	case "red":
		return ColorRed
	case "gray":
		return ColorGray
	case "white":
		return ColorWhite
	default:
		return ColorDefault
	}
}
