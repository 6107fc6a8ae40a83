// Package icon renders favicon and app-icon variants from a single source
// logo: tight alpha cropping, proportional downscaling, and compositing onto
// square, rounded-square, maskable, or circular backgrounds.
package icon

import (
	"image"
)

// TightBounds returns the smallest rectangle enclosing every pixel of img
// whose alpha is non-zero. ok is false when img is fully transparent.
func TightBounds(img *image.NRGBA) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			// Alpha is the fourth byte of each NRGBA pixel.
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
