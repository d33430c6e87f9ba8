// Package display adapts the GBA bitmap video modes to generic 2D
// drawing code. Each Display is a draw target bound to one mode, one
// page and one VRAM region, and turns (x, y, color) writes into the
// exact byte layout the display hardware scans out.
package display

import (
	"image"
	stdcolor "image/color"

	"github.com/valerio/go-gbadraw/gbadraw/color"
	"github.com/valerio/go-gbadraw/gbadraw/palram"
	"github.com/valerio/go-gbadraw/gbadraw/vram"
)

// Mode is one of the three bitmap display modes.
type Mode int

const (
	// Mode3: 240x160, one BGR555 halfword per pixel, single page.
	Mode3 Mode = 3
	// Mode4: 240x160, one palette index byte per pixel, two pages.
	Mode4 Mode = 4
	// Mode5: 160x128, one BGR555 halfword per pixel, two pages.
	Mode5 Mode = 5
)

// Size returns the fixed resolution of the mode.
func (m Mode) Size() (w, h int) {
	switch m {
	case Mode5:
		return 160, 128
	default:
		return 240, 160
	}
}

// BytesPerPixel returns the pixel width in VRAM: 2 for the direct
// color modes, 1 for the paletted Mode4.
func (m Mode) BytesPerPixel() int {
	if m == Mode4 {
		return 1
	}
	return 2
}

// Paletted reports whether the mode stores palette indices instead of
// direct color values.
func (m Mode) Paletted() bool {
	return m == Mode4
}

// Paged reports whether the mode has a second display page.
func (m Mode) Paged() bool {
	return m != Mode3
}

func (m Mode) String() string {
	switch m {
	case Mode3:
		return "Mode3"
	case Mode4:
		return "Mode4"
	case Mode5:
		return "Mode5"
	default:
		return "Mode?"
	}
}

// Target is the capability a direct color drawing surface offers:
// report its fixed size and accept pixel writes.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.BGR555)
}

// PalettedTarget is the same capability for indexed surfaces (Mode4
// displays and tile backing stores).
type PalettedTarget interface {
	Size() (w, h int)
	SetIndex(x, y int, i color.Palette)
}

// Pixel is one positioned direct color value, the unit a primitive
// rasterizer emits.
type Pixel struct {
	X, Y int
	C    color.BGR555
}

// Draw renders a sequence of pixels into a target.
func Draw(t Target, pixels []Pixel) {
	for _, p := range pixels {
		t.SetPixel(p.X, p.Y, p.C)
	}
}

// Display is a bitmap mode draw target over a VRAM region.
//
// Out-of-range coordinates are clipped: the write is dropped, never
// wrapped. This matches what generic drawing code expects from a
// fixed-size surface and keeps partial primitives at the screen edge
// safe.
type Display struct {
	mode Mode
	page vram.Page
	mem  *vram.Memory
	pal  *palram.Memory
}

// New returns a draw target for the given mode and page. The page is
// ignored for Mode3, which has only one.
func New(mem *vram.Memory, mode Mode, page vram.Page) *Display {
	if !mode.Paged() {
		page = vram.Page0
	}
	return &Display{mode: mode, page: page, mem: mem}
}

// WithPalette attaches a palette region, used to resolve Mode4 indices
// to colors when the display is read back (At, previews). Returns the
// display for chaining.
func (d *Display) WithPalette(pal *palram.Memory) *Display {
	d.pal = pal
	return d
}

// Mode returns the display's mode.
func (d *Display) Mode() Mode { return d.mode }

// Page returns the page the display draws into.
func (d *Display) Page() vram.Page { return d.page }

// Size returns the mode's fixed resolution.
func (d *Display) Size() (w, h int) { return d.mode.Size() }

// Bounds returns the drawable area as an image rectangle.
func (d *Display) Bounds() image.Rectangle {
	w, h := d.mode.Size()
	return image.Rect(0, 0, w, h)
}

// PixOffset returns the linear byte offset of the pixel at (x, y):
// row-major, stride equal to the horizontal resolution times the pixel
// width, plus the page base. The coordinate must be in bounds.
func (d *Display) PixOffset(x, y int) int {
	w, _ := d.mode.Size()
	return d.page.Base() + (y*w+x)*d.mode.BytesPerPixel()
}

func (d *Display) inBounds(x, y int) bool {
	w, h := d.mode.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

// SetPixel writes a direct color pixel. On Mode4 the call is a no-op:
// paletted surfaces only accept indices. Out-of-range coordinates are
// clipped.
func (d *Display) SetPixel(x, y int, c color.BGR555) {
	if d.mode.Paletted() || !d.inBounds(x, y) {
		return
	}
	d.mem.Write16(d.PixOffset(x, y), uint16(c))
}

// Pixel reads back a direct color pixel. Returns black for Mode4 or
// out-of-range coordinates.
func (d *Display) Pixel(x, y int) color.BGR555 {
	if d.mode.Paletted() || !d.inBounds(x, y) {
		return color.Black
	}
	return color.BGR555(d.mem.Read16(d.PixOffset(x, y)))
}

// SetIndex writes a palette index pixel. Only Mode4 stores indices;
// on the direct color modes the call is a no-op. The byte lands via a
// 16 bit read-modify-write, since VRAM has no byte store.
func (d *Display) SetIndex(x, y int, i color.Palette) {
	if !d.mode.Paletted() || !d.inBounds(x, y) {
		return
	}
	d.mem.WriteByte(d.PixOffset(x, y), uint8(i))
}

// Index reads back a palette index pixel. Returns 0 for direct color
// modes or out-of-range coordinates.
func (d *Display) Index(x, y int) color.Palette {
	if !d.mode.Paletted() || !d.inBounds(x, y) {
		return 0
	}
	return color.Palette(d.mem.ReadByte(d.PixOffset(x, y)))
}

// Clear fills the whole page with a direct color (no-op on Mode4).
func (d *Display) Clear(c color.BGR555) {
	if d.mode.Paletted() {
		return
	}
	w, h := d.mode.Size()
	base := d.page.Base()
	for off := 0; off < w*h*2; off += 2 {
		d.mem.Write16(base+off, uint16(c))
	}
}

// ClearIndex fills the whole page with a palette index (Mode4 only).
func (d *Display) ClearIndex(i color.Palette) {
	if !d.mode.Paletted() {
		return
	}
	w, h := d.mode.Size()
	base := d.page.Base()
	half := uint16(i) | uint16(i)<<8
	for off := 0; off < w*h; off += 2 {
		d.mem.Write16(base+off, half)
	}
}

// ColorModel implements image.Image.
func (d *Display) ColorModel() stdcolor.Model { return color.Model }

// At implements image.Image. Mode4 indices resolve through the
// attached palette; without one they read as black.
func (d *Display) At(x, y int) stdcolor.Color {
	if !d.inBounds(x, y) {
		return color.Black
	}
	if d.mode.Paletted() {
		if d.pal == nil {
			return color.Black
		}
		return d.pal.BG(uint8(d.Index(x, y)))
	}
	return d.Pixel(x, y)
}

// Set implements draw.Image for the direct color modes, letting any
// image/draw based code render straight into VRAM. The color is
// truncated to 5 bits per channel. On Mode4 the call is a no-op, as
// with SetPixel.
func (d *Display) Set(x, y int, c stdcolor.Color) {
	d.SetPixel(x, y, color.FromColor(c))
}
