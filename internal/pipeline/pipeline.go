// Package pipeline runs the load → grayscale → binarize → compose sequence.
//
// A Pipeline is strictly sequential: each stage starts only after the
// previous one produced its image, and a load failure stops everything that
// follows. The resulting images are returned to the caller; showing or
// saving them is left to the display package.
package pipeline

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-binarize/internal/imaging"
)

// Labels are the display captions of the three pipeline images, in order.
var Labels = []string{"Color", "Grayscale", "Binary"}

// Result holds every image produced by one run.
type Result struct {
	Color     image.Image
	Gray      *image.Gray
	Binary    *image.Gray
	Composite *image.NRGBA
}

// Images returns the color, grayscale and binary images in composition order.
func (r *Result) Images() []image.Image {
	return []image.Image{r.Color, r.Gray, r.Binary}
}

// Pipeline configures a run.
type Pipeline struct {
	// Threshold is the binarization level, 0-255.
	Threshold int

	// Load reads the source image. Defaults to imaging.Load.
	Load func(path string) (image.Image, error)

	// Logf, if set, receives one progress line per completed stage.
	Logf func(format string, args ...interface{})
}

// New returns a Pipeline that loads from disk and binarizes at threshold.
func New(threshold int) *Pipeline {
	return &Pipeline{
		Threshold: threshold,
		Load:      imaging.Load,
	}
}

// Run executes the pipeline on a single image path with the given threshold.
func Run(path string, threshold int) (*Result, error) {
	return New(threshold).Run(path)
}

// Run loads path and derives the grayscale, binary and composite images.
//
// The threshold is checked before anything is read. If loading fails the
// returned Result is nil, the error wraps imaging.ErrNotFound or
// imaging.ErrDecode, and no later stage runs.
func (p *Pipeline) Run(path string) (*Result, error) {
	if err := imaging.ValidateThreshold(p.Threshold); err != nil {
		return nil, err
	}

	load := p.Load
	if load == nil {
		load = imaging.Load
	}

	src, err := load(path)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	p.logf("image loaded: %s (%dx%d)", path, b.Dx(), b.Dy())

	res := &Result{Color: src}
	res.Gray = imaging.Grayscale(src)
	p.logf("converted to grayscale")

	res.Binary, err = imaging.Binarize(res.Gray, p.Threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to binarize image: %w", err)
	}
	p.logf("binarized at threshold %d", p.Threshold)

	res.Composite, err = imaging.Compose(res.Images(), Labels)
	if err != nil {
		return nil, fmt.Errorf("failed to compose images: %w", err)
	}
	cb := res.Composite.Bounds()
	p.logf("composed %d images into %dx%d", len(Labels), cb.Dx(), cb.Dy())

	return res, nil
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}
