package imaging

import "image"

// Mode is the channel layout convention of an image.
type Mode int

const (
	// ModeColor is an RGB image (any alpha is ignored).
	ModeColor Mode = iota
	// ModeGray is an 8-bit single channel intensity image.
	ModeGray
	// ModeBinary is a single channel image whose pixels are exactly 0 or 255.
	ModeBinary
)

func (m Mode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeGray:
		return "grayscale"
	case ModeBinary:
		return "binary"
	}
	return "unknown"
}

// ModeOf classifies img. Single channel images are binary when every pixel is
// 0 or 255 and grayscale otherwise; everything else is color.
func ModeOf(img image.Image) Mode {
	switch m := img.(type) {
	case *image.Gray:
		if isBinary(m) {
			return ModeBinary
		}
		return ModeGray
	case *image.Gray16:
		return ModeGray
	}
	return ModeColor
}

func isBinary(g *image.Gray) bool {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+w]
		for _, v := range row {
			if v != Black && v != White {
				return false
			}
		}
	}
	return true
}
