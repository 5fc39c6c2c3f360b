package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorCyan
	ColorYellow
	ColorGreen
	ColorRed
	ColorMagenta
)

// String returns the color name, used in tests and debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorMagenta:
		return "magenta"
	default:
		return "unknown"
	}
}
