// Package display hands pipeline images to the outside world: a file on disk
// or the platform's image viewer.
package display

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
)

// Save writes img to path. The encoder is chosen from the file extension
// (.png, .jpg/.jpeg, .gif, .tif/.tiff, .bmp).
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("failed to save image %q: %w", path, err)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save image %q: %w", path, err)
	}
	return nil
}

// Viewer opens images in an external program.
type Viewer struct {
	// Dir receives the temporary PNG files. Empty means os.TempDir().
	Dir string

	// Command builds the process that displays the file at path.
	// Defaults to OpenCommand for the running OS.
	Command func(path string) *exec.Cmd
}

// Show writes img to a temporary PNG and starts the viewer on it without
// waiting for the viewer to exit. The temporary file is left in place for the
// viewer to read; its path is returned.
func (v *Viewer) Show(img image.Image) (string, error) {
	f, err := os.CreateTemp(v.Dir, "binarize-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	command := v.Command
	if command == nil {
		command = func(p string) *exec.Cmd { return OpenCommand(runtime.GOOS, p) }
	}
	if err := command(path).Start(); err != nil {
		return path, fmt.Errorf("failed to start image viewer: %w", err)
	}
	return path, nil
}

// Show displays img with the default viewer of the running OS.
func Show(img image.Image) error {
	_, err := (&Viewer{}).Show(img)
	return err
}

// OpenCommand returns the command that opens path with the default
// application on goos.
func OpenCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", filepath.Clean(path))
	default:
		return exec.Command("xdg-open", path)
	}
}
