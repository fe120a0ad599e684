package engine

import "math/rand"

// Color indexes the fixed drawing palette. The engine only hands out
// symbolic colors; frontends map them to whatever their surface needs.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Magenta
	Cyan
)

// Palette holds the RGB values for each Color, in Color order.
var Palette = [...][3]uint8{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{255, 0, 255},
	{0, 255, 255},
}

func (c Color) RGB() (r, g, b uint8) {
	if c < 0 || int(c) >= len(Palette) {
		return 255, 255, 255
	}
	return Palette[c][0], Palette[c][1], Palette[c][2]
}

func randomColor(rng *rand.Rand) Color {
	return Color(rng.Intn(len(Palette)))
}
