package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to an ANSI color.
type Color uint8

// Colors used by the hangman view.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightWhite
	ColorBrightYellow
	ColorGray
)
