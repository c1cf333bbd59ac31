package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Luminance returns floor(0.299*r + 0.587*g + 0.114*b).
//
// The products are rounded to float64 individually and summed left to right,
// so the result does not depend on whether the platform fuses multiply-add.
func Luminance(r, g, b uint8) uint8 {
	v := float64(0.299*float64(r)) + float64(0.587*float64(g)) + float64(0.114*float64(b))
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Grayscale converts img to an 8-bit grayscale image of the same size using
// ITU-R BT.601 luminance weights.
//
// The source is read as non-premultiplied RGB; alpha is dropped. The result
// starts at (0,0) regardless of the source bounds. Rows are converted in
// parallel bands, each writing only its own rows of the output.
func Grayscale(img image.Image) *image.Gray {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			srow := src.Pix[y*src.Stride : y*src.Stride+w*4]
			drow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
			for x := range drow {
				i := x * 4
				drow[x] = Luminance(srow[i], srow[i+1], srow[i+2])
			}
		}
	})
	return dst
}
