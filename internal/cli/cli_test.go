package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-binarize/internal/display"
	"github.com/ironsheep/image-binarize/internal/imaging"
)

// testApp builds an app whose viewer records images instead of opening them
// and whose home directory is an empty temp dir.
func testApp(t *testing.T) (*app, *[]image.Image) {
	t.Helper()

	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	var shown []image.Image
	a := &app{
		v:     viper.New(),
		build: BuildInfo{Version: "1.2.3", BuildTime: "today", GitCommit: "abc123"},
		show: func(img image.Image) error {
			shown = append(shown, img)
			return nil
		},
		stdin:  strings.NewReader(""),
		stdout: &bytes.Buffer{},
	}
	return a, &shown
}

func execute(a *app, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

// writeRedGreen writes a 2x1 PNG with a red and a green pixel.
func writeRedGreen(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})

	path := filepath.Join(t.TempDir(), "red-green.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// binaryPixels returns the two binary panel values of a red-green composite.
func binaryPixels(img image.Image) [2]uint8 {
	r0, _, _, _ := img.At(4, 0).RGBA()
	r1, _, _, _ := img.At(5, 0).RGBA()
	return [2]uint8{uint8(r0 >> 8), uint8(r1 >> 8)}
}

func TestRun_ShowsCaptionedComposite(t *testing.T) {
	a, shown := testApp(t)
	path := writeRedGreen(t)

	if _, err := execute(a, "run", path); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(*shown) != 1 {
		t.Fatalf("expected 1 shown image, got %d", len(*shown))
	}
	size := (*shown)[0].Bounds().Size()
	if size != image.Pt(6, 1+display.CaptionHeight) {
		t.Errorf("shown size: got %v, want (6,%d)", size, 1+display.CaptionHeight)
	}
	if got := binaryPixels((*shown)[0]); got != [2]uint8{0, 255} {
		t.Errorf("binary panel: got %v, want [0 255]", got)
	}
}

func TestRun_OutputWithoutViewer(t *testing.T) {
	a, shown := testApp(t)
	path := writeRedGreen(t)
	output := filepath.Join(t.TempDir(), "composite.png")

	if _, err := execute(a, "run", path, "--no-show", "--labels=false", "-o", output); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(*shown) != 0 {
		t.Errorf("--no-show should not open a viewer, got %d images", len(*shown))
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Size() != image.Pt(6, 1) {
		t.Errorf("output size: got %v, want (6,1)", img.Bounds().Size())
	}
}

func TestRun_ThresholdSources(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		config string
		args   []string
		want   [2]uint8
	}{
		{"default", "", "", nil, [2]uint8{0, 255}},
		{"flag", "", "", []string{"-t", "50"}, [2]uint8{255, 255}},
		{"env", "200", "", nil, [2]uint8{0, 0}},
		{"config", "", "threshold: 50\n", nil, [2]uint8{255, 255}},
		{"flag beats env", "200", "", []string{"--threshold", "100"}, [2]uint8{0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, shown := testApp(t)
			path := writeRedGreen(t)

			if tt.env != "" {
				t.Setenv("BINARIZE_THRESHOLD", tt.env)
			}
			args := []string{"run", path, "--labels=false"}
			if tt.config != "" {
				cfg := filepath.Join(t.TempDir(), "binarize.yaml")
				if err := os.WriteFile(cfg, []byte(tt.config), 0o644); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
				args = append(args, "--config", cfg)
			}
			args = append(args, tt.args...)

			if _, err := execute(a, args...); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if len(*shown) != 1 {
				t.Fatalf("expected 1 shown image, got %d", len(*shown))
			}
			if got := binaryPixels((*shown)[0]); got != tt.want {
				t.Errorf("binary panel: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_MissingImage(t *testing.T) {
	a, shown := testApp(t)

	_, err := execute(a, "run", filepath.Join(t.TempDir(), "missing.jpg"))
	if !errors.Is(err, imaging.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(*shown) != 0 {
		t.Error("nothing should be shown after a load failure")
	}
}

func TestRun_InvalidThreshold(t *testing.T) {
	a, _ := testApp(t)

	_, err := execute(a, "run", writeRedGreen(t), "-t", "300")
	if !errors.Is(err, imaging.ErrInvalidThreshold) {
		t.Errorf("expected ErrInvalidThreshold, got %v", err)
	}
}

func TestRun_RequiresOnePath(t *testing.T) {
	a, _ := testApp(t)

	if _, err := execute(a, "run"); err == nil {
		t.Error("run without a path should fail")
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	a, _ := testApp(t)

	_, err := execute(a, "run", writeRedGreen(t), "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("an explicit config file that does not exist should be an error")
	}
}

func TestVersion(t *testing.T) {
	a, _ := testApp(t)

	out, err := execute(a, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	for _, want := range []string{"binarize-image 1.2.3", "today", "abc123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestServe(t *testing.T) {
	a, _ := testApp(t)
	a.stdin = strings.NewReader(`{"jsonrpc":"2.0","id":9,"method":"ping"}` + "\n")
	var stdout bytes.Buffer
	a.stdout = &stdout

	if _, err := execute(a, "serve"); err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `"id":9`) {
		t.Errorf("expected ping response, got %q", stdout.String())
	}
}
