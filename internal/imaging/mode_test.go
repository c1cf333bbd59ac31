package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestModeOf(t *testing.T) {
	binary := image.NewGray(image.Rect(0, 0, 2, 1))
	copy(binary.Pix, []uint8{0, 255})

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	copy(gray.Pix, []uint8{0, 128})

	tests := []struct {
		name string
		img  image.Image
		want Mode
	}{
		{"rgba", createInMemoryImage(2, 2, color.RGBA{1, 2, 3, 255}), ModeColor},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), ModeColor},
		{"gray", gray, ModeGray},
		{"gray16", image.NewGray16(image.Rect(0, 0, 2, 2)), ModeGray},
		{"binary", binary, ModeBinary},
		{"all black", image.NewGray(image.Rect(0, 0, 3, 3)), ModeBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModeOf(tt.img); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	tests := map[Mode]string{
		ModeColor:  "color",
		ModeGray:   "grayscale",
		ModeBinary: "binary",
		Mode(42):   "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String(): got %s, want %s", int(m), got, want)
		}
	}
}
