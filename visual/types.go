package visual

import (
	"errors"
	"image/color"
)

var (
	// ErrPlotDimension is returned by ScatterPlot for datasets that are
	// not exactly 2 columns wide.
	ErrPlotDimension = errors.New("visual: scatter needs exactly two columns")

	// ErrLabelMismatch is returned when labels do not fit the dataset:
	// wrong length or a label below 1.
	ErrLabelMismatch = errors.New("visual: labels do not match dataset")
)

// palette cycles across clusters; chosen for contrast on white.
var palette = []color.RGBA{
	{R: 0xe4, G: 0x5b, B: 0x5b, A: 0xff}, // red
	{R: 0x3b, G: 0x6f, B: 0xd6, A: 0xff}, // blue
	{R: 0x2f, G: 0xa3, B: 0x5c, A: 0xff}, // green
	{R: 0xe0, G: 0x9c, B: 0x2b, A: 0xff}, // amber
	{R: 0x8e, G: 0x5b, B: 0xc8, A: 0xff}, // violet
	{R: 0x3f, G: 0xb2, B: 0xb2, A: 0xff}, // teal
	{R: 0xd1, G: 0x5f, B: 0xa8, A: 0xff}, // magenta
	{R: 0x6b, G: 0x6b, B: 0x6b, A: 0xff}, // gray
}

// clusterColor returns the palette color for a 1-based cluster label.
func clusterColor(label int) color.RGBA {
	return palette[(label-1)%len(palette)]
}
