// Package convert turns arbitrary source images into the 15 bit TGA
// files the device consumes: decode, downscale to fit the screen if
// needed, truncate to 5 bits per channel, write a sibling .tga file.
// The transform is deterministic and has no partial-failure cases;
// anything unreadable fails loudly.
package convert

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"

	"github.com/valerio/go-gbadraw/gbadraw/tga"
)

// Screen dimensions the output must fit within.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// File converts the image at path and writes the result next to it
// with a .tga extension, returning the output path.
func File(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	slog.Debug("Decoded source image",
		"path", path,
		"format", format,
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))

	img = FitScreen(img)

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".tga"
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := tga.Encode(out, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", outPath, err)
	}

	return outPath, nil
}

// FitScreen downscales an image to fit within the 240x160 screen,
// preserving aspect ratio. Images that already fit pass through
// unchanged; nothing is ever upscaled.
func FitScreen(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= ScreenWidth && b.Dy() <= ScreenHeight {
		return img
	}
	return resize.Thumbnail(ScreenWidth, ScreenHeight, img, resize.Lanczos3)
}
