package core

// Color is a palette index for screen cells and draw calls.
// Frontends map it to ANSI codes or RGBA values.
type Color uint8

// Palette used by the game screens.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorBlue
	ColorBlueDark
	ColorBlueDarker
	ColorGray
	ColorAsteroid
	ColorGreen
	ColorGreenDark
	ColorGreenAcidic
	ColorRed
	ColorYellow
	ColorWhite
)

// RGB returns the 8-bit channel values of the color.
// ColorDefault is treated as white.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0
	case ColorBlue:
		return 60, 60, 255
	case ColorBlueDark:
		return 30, 30, 120
	case ColorBlueDarker:
		return 10, 10, 30
	case ColorGray:
		return 200, 200, 200
	case ColorAsteroid:
		return 100, 100, 100
	case ColorGreen:
		return 60, 255, 60
	case ColorGreenDark:
		return 30, 120, 30
	case ColorGreenAcidic:
		return 100, 255, 0
	case ColorRed:
		return 255, 60, 60
	case ColorYellow:
		return 255, 255, 0
	default:
		return 255, 255, 255
	}
}
