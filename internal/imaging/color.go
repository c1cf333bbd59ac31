package imaging

import (
	"image"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/histogram"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// Summary describes the content of one pipeline image.
type Summary struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mode   string `json:"mode"`

	// MeanColor is the per-channel average over all pixels, alpha ignored.
	MeanColor ColorResult `json:"mean_color"`

	// WhiteRatio is the fraction (0-1) of pixels that are pure white
	// (R=G=B=255). For binary images it is the share of foreground pixels.
	WhiteRatio float64 `json:"white_ratio"`
}

// Summarize computes dimensions, mode, mean color and white ratio of img.
//
// Channel statistics come from per-channel histograms of the opaque RGB
// version of img, so transparent pixels count with their stored color.
func Summarize(img image.Image) *Summary {
	rgb := ToRGB(img)
	w, h := rgb.Rect.Dx(), rgb.Rect.Dy()

	s := &Summary{
		Width:  w,
		Height: h,
		Mode:   ModeOf(img).String(),
	}
	total := w * h
	if total == 0 {
		s.MeanColor = newColorResult(0, 0, 0)
		return s
	}

	hist := histogram.NewRGBAHistogram(rgb)
	s.MeanColor = newColorResult(
		meanBin(hist.R.Bins, total),
		meanBin(hist.G.Bins, total),
		meanBin(hist.B.Bins, total),
	)

	white := 0
	for i := 3; i < len(rgb.Pix); i += 4 {
		if rgb.Pix[i-3] == White && rgb.Pix[i-2] == White && rgb.Pix[i-1] == White {
			white++
		}
	}
	s.WhiteRatio = math.Round(float64(white)/float64(total)*1000) / 1000
	return s
}

// meanBin returns the rounded average value of a 256 bin histogram.
func meanBin(bins []int, total int) uint8 {
	var sum int
	for v, n := range bins {
		sum += v * n
	}
	return uint8(math.Round(float64(sum) / float64(total)))
}

func newColorResult(r, g, b uint8) ColorResult {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	hue, sat, light := c.Hsl()
	return ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(hue),
			S: int(math.Round(sat * 100)),
			L: int(math.Round(light * 100)),
		},
	}
}
