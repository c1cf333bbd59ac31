package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// Binary pixel values.
const (
	Black uint8 = 0
	White uint8 = 255
)

// DefaultThreshold is the binarization level used when none is configured.
const DefaultThreshold = 127

// ErrInvalidThreshold reports a threshold outside [0,255].
var ErrInvalidThreshold = errors.New("threshold must be between 0 and 255")

// ValidateThreshold returns an error wrapping ErrInvalidThreshold when t is
// not a valid 8-bit level. Out of range values are rejected, never clamped.
func ValidateThreshold(t int) error {
	if t < 0 || t > 255 {
		return fmt.Errorf("invalid threshold %d: %w", t, ErrInvalidThreshold)
	}
	return nil
}

// Binarize maps every pixel of gray to White if it is strictly greater than
// threshold and to Black otherwise. A pixel equal to threshold becomes Black.
//
// The result has the dimensions of gray, starts at (0,0) and only ever holds
// the values 0 and 255.
func Binarize(gray *image.Gray, threshold int) (*image.Gray, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	level := uint8(threshold)

	r := gray.Rect
	w, h := r.Dx(), r.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			off := gray.PixOffset(r.Min.X, r.Min.Y+y)
			srow := gray.Pix[off : off+w]
			drow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
			for x, v := range srow {
				if v > level {
					drow[x] = White
				} else {
					drow[x] = Black
				}
			}
		}
	})
	return dst, nil
}

// BinarizeImage converts img with Grayscale and binarizes the result, exactly
// as the pipeline does. Single channel sources are converted too: a gray
// level v is read as R=G=B=v, whose luminance may floor to v-1. Black and
// White map to themselves, so binarizing a Binarize result again with the
// same threshold reproduces it.
func BinarizeImage(img image.Image, threshold int) (*image.Gray, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	return Binarize(Grayscale(img), threshold)
}
