package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CaptionHeight is the height in pixels of the strip added by Caption.
const CaptionHeight = 20

var (
	captionBackground = color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	captionText       = image.NewUniform(color.White)
)

// Caption returns a copy of img with a strip of CaptionHeight pixels appended
// at the bottom. Each label is centered under its panel; panel i spans from
// offsets[i] to offsets[i+1] (or the right edge for the last one). Labels
// wider than their panel are clipped by the canvas, not wrapped.
func Caption(img image.Image, offsets []int, labels []string) (*image.NRGBA, error) {
	if len(offsets) != len(labels) {
		return nil, fmt.Errorf("caption: %d offsets for %d labels", len(offsets), len(labels))
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	canvas := imaging.New(w, h+CaptionHeight, captionBackground)
	canvas = imaging.Paste(canvas, img, image.Pt(0, 0))

	face := basicfont.Face7x13
	baseline := h + (CaptionHeight+face.Ascent-face.Descent)/2

	d := &font.Drawer{
		Dst:  canvas,
		Src:  captionText,
		Face: face,
	}
	for i, label := range labels {
		start := offsets[i]
		end := w
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		textWidth := d.MeasureString(label).Ceil()
		x := start + (end-start-textWidth)/2
		if x < start {
			x = start
		}
		d.Dot = fixed.P(x, baseline)
		d.DrawString(label)
	}
	return canvas, nil
}
