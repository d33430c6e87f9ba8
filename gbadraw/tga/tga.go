// Package tga reads and writes the 15 bit TGA files the GBA toolchain
// consumes.
//
// The on-disk format is an uncompressed true color TGA with 16 bits
// per pixel, where each pixel is a raw device BGR555 value (red in the
// low bits). Relative to the TGA-native channel order this swaps red
// and blue, which is exactly what lets the payload be copied into VRAM
// without per-pixel work on device. Rows are stored bottom-up, the TGA
// default and what stock conversion tools emit.
package tga

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"io"

	"github.com/valerio/go-gbadraw/gbadraw/color"
)

const (
	headerLen = 18

	typeTrueColor = 2
	pixelDepth    = 16

	// descriptor bit 5: rows stored top-down instead of bottom-up
	descTopDown = 0x20
)

var (
	ErrFormat   = errors.New("tga: unsupported image type")
	ErrTooLarge = errors.New("tga: image dimensions exceed 16 bits")
)

// Image is a decoded 15 bit TGA: raw BGR555 pixels in row-major
// top-left order. It implements image.Image, so a decoded file can be
// drawn straight onto any display target.
type Image struct {
	Pix  []color.BGR555
	Rect image.Rectangle
}

// NewImage returns an all-black image of the given size.
func NewImage(w, h int) *Image {
	return &Image{
		Pix:  make([]color.BGR555, w*h),
		Rect: image.Rect(0, 0, w, h),
	}
}

func (m *Image) ColorModel() stdcolor.Model { return color.Model }
func (m *Image) Bounds() image.Rectangle    { return m.Rect }

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Rect.Dx() + (x - m.Rect.Min.X)
}

func (m *Image) At(x, y int) stdcolor.Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return color.Black
	}
	return m.Pix[m.PixOffset(x, y)]
}

// Set stores a color, truncated to 5 bits per channel.
func (m *Image) Set(x, y int, c stdcolor.Color) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = color.FromColor(c)
}

// Encode writes img as a 15 bit TGA. Colors are truncated to 5 bits
// per channel on the way out.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width > 0xFFFF || height > 0xFFFF {
		return ErrTooLarge
	}

	var header [headerLen]byte
	header[2] = typeTrueColor
	binary.LittleEndian.PutUint16(header[12:14], uint16(width))
	binary.LittleEndian.PutUint16(header[14:16], uint16(height))
	header[16] = pixelDepth

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	// bottom-up row order
	var pix [2]byte
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			binary.LittleEndian.PutUint16(pix[:], uint16(color.FromColor(img.At(x, y))))
			if _, err := bw.Write(pix[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// Decode reads a 15 bit TGA produced by Encode or by standard
// conversion tools. Only uncompressed 16bpp true color files are
// accepted; both row orders are handled.
func Decode(r io.Reader) (*Image, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("tga: reading header: %w", err)
	}

	if header[1] != 0 || header[2] != typeTrueColor {
		return nil, ErrFormat
	}
	if header[16] != pixelDepth {
		return nil, fmt.Errorf("tga: unsupported pixel depth %d", header[16])
	}

	// skip the optional image ID field
	if idLen := int(header[0]); idLen > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(idLen)); err != nil {
			return nil, fmt.Errorf("tga: reading image id: %w", err)
		}
	}

	width := int(binary.LittleEndian.Uint16(header[12:14]))
	height := int(binary.LittleEndian.Uint16(header[14:16]))

	data := make([]byte, width*height*2)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("tga: reading pixel data: %w", err)
	}

	img := NewImage(width, height)
	topDown := header[17]&descTopDown != 0
	for row := 0; row < height; row++ {
		y := row
		if !topDown {
			y = height - 1 - row
		}
		for x := 0; x < width; x++ {
			raw := binary.LittleEndian.Uint16(data[(row*width+x)*2:])
			img.Pix[y*width+x] = color.BGR555(raw)
		}
	}

	return img, nil
}
