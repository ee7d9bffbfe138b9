package board

import "image/color"

// palette is the fixed rotation of chalk colors. Commands are colored by
// their cumulative position since the last clear, so replaying the same
// command sequence always produces the same coloring.
var palette = []color.NRGBA{
	{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}, // sky blue
	{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}, // chalk yellow
	{R: 0xf0, G: 0x62, B: 0x92, A: 0xff}, // pink
	{R: 0x81, G: 0xc7, B: 0x84, A: 0xff}, // green
	{R: 0xff, G: 0x8a, B: 0x65, A: 0xff}, // orange
	{R: 0xb3, G: 0x9d, B: 0xdb, A: 0xff}, // violet
}

// PaletteSize is the length of the color rotation.
const PaletteSize = 6

// PaletteColor maps a command's color index onto the rotation.
func PaletteColor(i int) color.NRGBA {
	if i < 0 {
		i = 0
	}
	return palette[i%len(palette)]
}
