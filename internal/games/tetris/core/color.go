package core

// BlockColor is the visual color of a piece. It carries no game logic
// beyond the spawn sequence.
type BlockColor uint8

const (
	ColorRed BlockColor = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorPink
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c BlockColor) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Next returns the following color in the spawn sequence, wrapping Pink to Red.
func (c BlockColor) Next() BlockColor {
	return (c + 1) % ColorCount
}

// RandomColor picks a color uniformly.
func RandomColor(r Rand) BlockColor {
	return BlockColor(r.Intn(int(ColorCount)))
}
