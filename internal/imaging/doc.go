// Package imaging implements the grayscale / binarize / compose pipeline stages.
//
// Every stage is a pure function over standard Go image.Image values: it reads
// its input, allocates a new output buffer and never mutates what it was given.
// Outputs are always rebased so that Bounds().Min is (0,0).
//
// # Stages
//
//   - Load: decode a file into a color image (PNG, JPEG, GIF, BMP, TIFF, WebP)
//   - Grayscale: ITU-R BT.601 luminance, floor(0.299*R + 0.587*G + 0.114*B)
//   - Binarize: 255 where gray > threshold, 0 otherwise
//   - Compose: paste images side by side on an opaque black RGB canvas
//
// # Color Modes
//
// Images are classified by ModeOf into color, grayscale and binary. Binary
// images are stored as *image.Gray whose pixels are exactly 0 or 255, which
// keeps them directly displayable and encodable.
//
// Grayscale does not special-case single channel sources: a gray level v is
// treated as the color (v,v,v), so every path from a decoded file to a binary
// image gives the same result whatever the file's color model.
//
// # Alpha
//
// Alpha is dropped, never blended: the luminance of a half transparent red
// pixel is the luminance of red. The compositor forces every pasted pixel
// opaque.
//
// # Error Handling
//
// Load failures are classified with ErrNotFound and ErrDecode, thresholds
// outside [0,255] with ErrInvalidThreshold. All are wrapped with context and
// can be tested with errors.Is.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Grayscale and Binarize split
// their work across row bands internally; each band writes a disjoint part of
// the output, so results do not depend on scheduling.
package imaging
