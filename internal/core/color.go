package core

// Color is the color of a frame cell or a settled board block.
// ColorDefault doubles as "empty" on the board.
type Color uint8

// Piece colors first, then the colors of the frame and the side panel.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorPurple

	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
)
