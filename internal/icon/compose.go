package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// ErrEmptyArtwork is returned when the source image has no pixel with a
// non-zero alpha channel.
var ErrEmptyArtwork = errors.New("source image appears to be fully transparent")

// Strategy selects how the canvas behind the artwork is built.
type Strategy string

const (
	// StrategySquare fills the whole canvas with the background color.
	StrategySquare Strategy = "square"
	// StrategyRounded draws the background as a rounded rectangle on a
	// transparent canvas.
	StrategyRounded Strategy = "rounded"
	// StrategyMaskable produces full-bleed artwork for OS-level masks.
	StrategyMaskable Strategy = "maskable"
	// StrategyCircle draws the background as a disc inscribed in a
	// transparent canvas.
	StrategyCircle Strategy = "circle"
)

// Compose renders src as a size x size icon according to spec.
//
// The artwork is cropped to its tight alpha bounds, downscaled to fit the
// padded inner area (never upscaled), and centered on the background built
// by the spec's strategy.
func Compose(src *image.NRGBA, spec Spec, bg color.NRGBA) (*image.NRGBA, error) {
	art, err := fitArtwork(src, spec.Size, spec.Padding)
	if err != nil {
		return nil, err
	}

	var dc *gg.Context
	switch spec.Strategy {
	case StrategySquare, StrategyMaskable:
		dc = squareCanvas(spec.Size, bg)
	case StrategyRounded:
		dc = roundedCanvas(spec.Size, float64(spec.Size)*spec.Radius, bg)
	case StrategyCircle:
		dc = circleCanvas(spec.Size, bg)
	default:
		return nil, fmt.Errorf("unknown strategy %q for %s", spec.Strategy, spec.Name)
	}

	off := centerOffset(spec.Size, art.Bounds())
	dc.DrawImage(art, off.X, off.Y)
	return imaging.Clone(dc.Image()), nil
}

// InnerSize returns the edge length available to the artwork on a canvas of
// the given size once padding has been reserved on each side.
func InnerSize(size int, padding float64) int {
	inner := int(math.Round(float64(size) * (1.0 - padding*2.0)))
	return max(1, inner)
}

// fitArtwork crops src to its opaque region and scales it down, preserving
// aspect ratio, so that its longer edge fits the padded inner size.
func fitArtwork(src *image.NRGBA, size int, padding float64) (*image.NRGBA, error) {
	bbox, ok := TightBounds(src)
	if !ok {
		return nil, ErrEmptyArtwork
	}

	cropped := imaging.Crop(src, bbox)
	inner := InnerSize(size, padding)

	// Fit returns an unscaled clone when the crop already fits.
	return imaging.Fit(cropped, inner, inner, imaging.Lanczos), nil
}

func centerOffset(size int, art image.Rectangle) image.Point {
	return image.Pt((size-art.Dx())/2, (size-art.Dy())/2)
}

func squareCanvas(size int, bg color.NRGBA) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetColor(bg)
	dc.Clear()
	return dc
}

func roundedCanvas(size int, radius float64, bg color.NRGBA) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetColor(bg)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)
	dc.Fill()
	return dc
}

func circleCanvas(size int, bg color.NRGBA) *gg.Context {
	half := float64(size) / 2
	dc := gg.NewContext(size, size)
	dc.SetColor(bg)
	dc.DrawCircle(half, half, half)
	dc.Fill()
	return dc
}
