package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrSourceMissing is returned when the source logo does not exist.
var ErrSourceMissing = errors.New("missing source logo")

// Options configures a Generator.
type Options struct {
	SourcePath string      // logo to render from
	OutputDir  string      // directory the icons are written to
	Background color.NRGBA // opaque canvas color
	Specs      []Spec      // icons to produce, in order; DefaultSpecs if nil
	Verbose    bool        // log each icon as it is written
}

// Generator renders a fixed list of icons from one source image.
type Generator struct {
	opts Options
}

// Result records one icon written by Run.
type Result struct {
	Spec Spec
	Path string
}

// Stale records an icon whose file on disk does not match a fresh render.
type Stale struct {
	Spec    Spec
	Path    string
	Missing bool
}

// NewGenerator creates a Generator. A zero Background is replaced with
// DefaultBackground and nil Specs with DefaultSpecs.
func NewGenerator(opts Options) *Generator {
	if opts.Background == (color.NRGBA{}) {
		opts.Background = DefaultBackground
	}
	if opts.Specs == nil {
		opts.Specs = DefaultSpecs
	}
	return &Generator{opts: opts}
}

// LoadSource reads the image at path and converts it to NRGBA.
func LoadSource(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("checking source logo %s: %w", path, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source logo %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Run loads the source once, then renders and saves every spec in order.
// The first failure aborts the run; files written before it are left in
// place.
func (g *Generator) Run() ([]Result, error) {
	src, err := LoadSource(g.opts.SourcePath)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(g.opts.Specs))
	for _, spec := range g.opts.Specs {
		img, err := Compose(src, spec, g.opts.Background)
		if err != nil {
			return results, fmt.Errorf("rendering %s: %w", spec.Name, err)
		}

		outPath := filepath.Join(g.opts.OutputDir, spec.Name)
		if err := Save(outPath, img); err != nil {
			return results, fmt.Errorf("writing %s: %w", outPath, err)
		}
		if g.opts.Verbose {
			log.Printf("wrote %s (%dx%d, %s)", outPath, spec.Size, spec.Size, spec.Strategy)
		}
		results = append(results, Result{Spec: spec, Path: outPath})
	}
	return results, nil
}

// Check renders every spec in memory and compares the encoded PNG with the
// file on disk. It returns the icons that are missing or differ.
func (g *Generator) Check() ([]Stale, error) {
	src, err := LoadSource(g.opts.SourcePath)
	if err != nil {
		return nil, err
	}

	var stale []Stale
	for _, spec := range g.opts.Specs {
		img, err := Compose(src, spec, g.opts.Background)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", spec.Name, err)
		}
		want, err := EncodeBytes(img)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", spec.Name, err)
		}

		outPath := filepath.Join(g.opts.OutputDir, spec.Name)
		got, err := os.ReadFile(outPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				stale = append(stale, Stale{Spec: spec, Path: outPath, Missing: true})
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", outPath, err)
		}
		if !bytes.Equal(got, want) {
			stale = append(stale, Stale{Spec: spec, Path: outPath})
		}
	}
	return stale, nil
}
