package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the runner's terminal view.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
