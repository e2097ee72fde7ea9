package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorGray
)

// HealthColor maps a health ratio in [0, 1] onto the bar palette:
// green above one half, yellow above one quarter, red below.
func HealthColor(ratio float64) Color {
	switch {
	case ratio > 0.5:
		return ColorGreen
	case ratio > 0.25:
		return ColorYellow
	default:
		return ColorRed
	}
}
