package icon

import (
	"image/color"
)

// DefaultBackground is the dark canvas color used behind the artwork. It
// keeps contrast on browser tab strips and launcher backgrounds.
var DefaultBackground = color.NRGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF}

// Spec describes one generated icon file.
type Spec struct {
	Name     string   // output file name, relative to the output directory
	Size     int      // edge length in pixels
	Padding  float64  // fraction of Size left empty on each side
	Strategy Strategy // canvas construction
	Radius   float64  // corner radius as a fraction of Size (rounded only)
}

// DefaultSpecs is the fixed set of icons written on every run, in order.
//
// Only the favicon sizes get rounded corners: browsers do not mask tab icons,
// whereas iOS and Android apply their own masks to the larger variants.
var DefaultSpecs = []Spec{
	{Name: "favicon-16x16.png", Size: 16, Padding: 0.12, Strategy: StrategyRounded, Radius: 0.22},
	{Name: "favicon-32x32.png", Size: 32, Padding: 0.12, Strategy: StrategyRounded, Radius: 0.22},
	{Name: "apple-touch-icon.png", Size: 180, Padding: 0.10, Strategy: StrategySquare},
	{Name: "android-chrome-192x192.png", Size: 192, Padding: 0.10, Strategy: StrategySquare},
	{Name: "android-chrome-512x512.png", Size: 512, Padding: 0.10, Strategy: StrategySquare},
	{Name: "android-chrome-maskable-192x192.png", Size: 192, Padding: 0.14, Strategy: StrategyMaskable},
	{Name: "android-chrome-maskable-512x512.png", Size: 512, Padding: 0.14, Strategy: StrategyMaskable},
}
