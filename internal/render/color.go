package render

// Color is a foreground colour hint for a screen cell.
// Front ends map it to terminal colours; plain text ignores it.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorCyan
	ColorBrightRed
	ColorYellow
	ColorGray
	ColorBrightWhite
)
