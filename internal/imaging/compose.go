package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrNoImages is returned by Compose when given nothing to compose.
	ErrNoImages = errors.New("no images to compose")

	// ErrLabelMismatch is returned by Compose when labels and images differ in count.
	ErrLabelMismatch = errors.New("label count does not match image count")
)

// FillColor is the color of canvas areas not covered by any image, i.e. the
// strip below images shorter than the tallest one.
var FillColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Offsets returns the horizontal position of each image in a composition:
// the first image is at 0 and each following one starts where the previous
// one ends.
func Offsets(images []image.Image) []int {
	offsets := make([]int, len(images))
	x := 0
	for i, img := range images {
		offsets[i] = x
		x += img.Bounds().Dx()
	}
	return offsets
}

// Compose places images side by side, left to right, top aligned, on a single
// opaque RGB canvas.
//
// The canvas is as wide as the sum of the image widths and as tall as the
// tallest image. Every image is normalized to opaque RGB first (gray and
// binary values v become R=G=B=v, alpha is forced to 255). Images are neither
// scaled nor centered; the area below a shorter image is FillColor.
//
// labels annotate the images for display and are not drawn here. They may be
// nil; otherwise there must be one label per image.
func Compose(images []image.Image, labels []string) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if labels != nil && len(labels) != len(images) {
		return nil, fmt.Errorf("%w: %d labels for %d images", ErrLabelMismatch, len(labels), len(images))
	}

	totalWidth, maxHeight := 0, 0
	for _, img := range images {
		b := img.Bounds()
		totalWidth += b.Dx()
		if b.Dy() > maxHeight {
			maxHeight = b.Dy()
		}
	}

	canvas := newCanvas(totalWidth, maxHeight)
	for i, off := range Offsets(images) {
		src := ToRGB(images[i])
		if src.Rect.Empty() {
			continue
		}
		canvas = imaging.Paste(canvas, src, image.Pt(off, 0))
	}
	return canvas, nil
}

// newCanvas returns a w x h image filled with FillColor. Unlike imaging.New it
// keeps the requested bounds when one side is zero, so a composition of
// zero-width images is still as tall as the tallest of them.
func newCanvas(w, h int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill := []uint8{FillColor.R, FillColor.G, FillColor.B, FillColor.A}
	for i := 0; i < len(canvas.Pix); i += 4 {
		copy(canvas.Pix[i:i+4], fill)
	}
	return canvas
}

// ToRGB returns an opaque copy of img in the NRGBA layout, starting at (0,0).
// Color channels are kept as stored; alpha is set to 255.
func ToRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	return dst
}
