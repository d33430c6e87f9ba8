// Package color defines the two pixel representations the Game Boy
// Advance video hardware understands: direct 15 bit BGR color for the
// bitmap modes and 8 bit palette indices for tile data.
//
// The two representations are disjoint. A draw target accepts one or
// the other, never both.
package color

import (
	stdcolor "image/color"

	"github.com/valerio/go-gbadraw/gbadraw/bit"
)

// BGR555 is a direct color value as stored in VRAM: 5 bits per channel
// with red in the low bits.
//
//	Bit:   15 | 14-10 | 9-5   | 4-0
//	Field:  - | blue  | green | red
//
// Bit 15 is ignored by the display hardware.
type BGR555 uint16

// New packs three 8 bit channels into a BGR555 value. Channels are
// truncated to their top 5 bits, no rounding or dithering.
func New(r, g, b uint8) BGR555 {
	return BGR555(uint16(bit.Truncate5(r)) |
		uint16(bit.Truncate5(g))<<5 |
		uint16(bit.Truncate5(b))<<10)
}

// Channels returns the raw 5 bit channel values (range 0-31).
func (c BGR555) Channels() (r, g, b uint8) {
	r = uint8(bit.ExtractBits16(uint16(c), 4, 0))
	g = uint8(bit.ExtractBits16(uint16(c), 9, 5))
	b = uint8(bit.ExtractBits16(uint16(c), 14, 10))
	return
}

// SwapRB exchanges the red and blue fields. Applying it twice returns
// the original value. This is the transform between the device byte
// order and the RGB order most source images use.
func (c BGR555) SwapRB() BGR555 {
	r, g, b := c.Channels()
	return BGR555(uint16(b) | uint16(g)<<5 | uint16(r)<<10)
}

// RGBA implements image/color.Color. Each 5 bit channel is expanded by
// bit replication, so converting a color down to BGR555 and back keeps
// the top 5 bits of every channel intact.
func (c BGR555) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := c.Channels()
	r = uint32(bit.Replicate5(cr))
	r |= r << 8
	g = uint32(bit.Replicate5(cg))
	g |= g << 8
	b = uint32(bit.Replicate5(cb))
	b |= b << 8
	a = 0xFFFF
	return
}

// Model converts any color to BGR555 by channel truncation.
var Model = stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
	if _, ok := c.(BGR555); ok {
		return c
	}
	return FromColor(c)
})

// FromColor converts a generic color to BGR555 by truncating each
// channel to 5 bits. Alpha is discarded.
func FromColor(c stdcolor.Color) BGR555 {
	r, g, b, _ := c.RGBA()
	return New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Direct color constants, the same set the hardware examples use for
// their drawing palettes.
const (
	Black   BGR555 = 0x0000
	White   BGR555 = 0x7FFF
	Red     BGR555 = 0x001F
	Green   BGR555 = 0x03E0
	Blue    BGR555 = 0x7C00
	Yellow  BGR555 = 0x03FF
	Magenta BGR555 = 0x7C1F
	Cyan    BGR555 = 0x7FE0
)

// Palette is an index into one of the hardware color palettes, used by
// Mode4 framebuffers and by tile data.
type Palette uint8

// Transparent is palette slot 0, which the hardware never draws.
const Transparent Palette = 0
