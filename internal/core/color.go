package core

// Color names a palette entry. The front end maps each one to a terminal
// color; the simulation only picks names.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Seasonal palette
	ColorPink
	ColorGold
	ColorSky
	ColorRust
	ColorMint
	ColorNeon
	ColorNight
	ColorDusk
	ColorSand
	ColorStorm
)
