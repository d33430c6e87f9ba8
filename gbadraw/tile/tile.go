// Package tile provides draw targets over sprite and background tile
// backing stores.
//
// GBA tiles are 8x8 pixels of palette indices, packed at either 4 or
// 8 bits per pixel:
//
//	4bpp: 32 bytes per tile, two pixels per byte, low nibble first.
//	      Index 0-15 into one of sixteen 16 color palettes.
//	8bpp: 64 bytes per tile, one pixel per byte.
//	      Index 0-255 into the single 256 color palette.
//
// Pixels are stored row-major, so pixel i = x + y*8. In both depths
// index 0 is transparent. A tile is composed off-screen with the same
// pixel writes as a framebuffer, then uploaded into a VRAM character
// block in one go.
//
// Reference: https://problemkaputt.de/gbatek.htm#lcdvramcharacterdata
package tile

import (
	"github.com/valerio/go-gbadraw/gbadraw/color"
	"github.com/valerio/go-gbadraw/gbadraw/vram"
)

// Width and Height are the fixed tile dimensions.
const (
	Width  = 8
	Height = 8
)

// Slots per character block at each depth (16 KiB block / tile size).
const (
	Slots4 = vram.CharBlockSize / 32
	Slots8 = vram.CharBlockSize / 64
)

func inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}

// Tile4 is a 4bpp tile backing store, stored as eight 32 bit words the
// way VRAM lays them out.
type Tile4 [8]uint32

// NewTile4 returns a tile with every pixel set to the given index.
func NewTile4(fill color.Palette) *Tile4 {
	t := &Tile4{}
	t.Fill(fill)
	return t
}

// Size returns the fixed 8x8 tile resolution.
func (t *Tile4) Size() (w, h int) { return Width, Height }

// SetIndex writes one pixel. Only the low 4 bits of the index are
// stored. Out-of-range coordinates are clipped, as with the bitmap
// displays.
func (t *Tile4) SetIndex(x, y int, i color.Palette) {
	if !inBounds(x, y) {
		return
	}
	idx := uint(x + y*Width)
	shift := (idx % 8) * 4
	word := &t[idx/8]
	*word &^= 0xF << shift
	*word |= (uint32(i) & 0xF) << shift
}

// Index reads one pixel back. Out-of-range coordinates read as 0.
func (t *Tile4) Index(x, y int) color.Palette {
	if !inBounds(x, y) {
		return 0
	}
	idx := uint(x + y*Width)
	return color.Palette(t[idx/8] >> ((idx % 8) * 4) & 0xF)
}

// Fill sets every pixel to the given index.
func (t *Tile4) Fill(i color.Palette) {
	word := uint32(i) & 0xF
	word |= word<<4 | word<<8 | word<<12 | word<<16 | word<<20 | word<<24 | word<<28
	for w := range t {
		t[w] = word
	}
}

// WriteTo uploads the tile into a character block slot through the
// 16 bit VRAM write path.
func (t *Tile4) WriteTo(mem *vram.Memory, charBlock, slot int) {
	base := charBlock*vram.CharBlockSize + slot*32
	for w, word := range t {
		mem.Write16(base+w*4, uint16(word))
		mem.Write16(base+w*4+2, uint16(word>>16))
	}
}

// Tile8 is an 8bpp tile backing store, stored as sixteen 32 bit words.
type Tile8 [16]uint32

// NewTile8 returns a tile with every pixel set to the given index.
func NewTile8(fill color.Palette) *Tile8 {
	t := &Tile8{}
	t.Fill(fill)
	return t
}

// Size returns the fixed 8x8 tile resolution.
func (t *Tile8) Size() (w, h int) { return Width, Height }

// SetIndex writes one pixel. Out-of-range coordinates are clipped.
func (t *Tile8) SetIndex(x, y int, i color.Palette) {
	if !inBounds(x, y) {
		return
	}
	idx := uint(x + y*Width)
	shift := (idx % 4) * 8
	word := &t[idx/4]
	*word &^= 0xFF << shift
	*word |= uint32(i) << shift
}

// Index reads one pixel back. Out-of-range coordinates read as 0.
func (t *Tile8) Index(x, y int) color.Palette {
	if !inBounds(x, y) {
		return 0
	}
	idx := uint(x + y*Width)
	return color.Palette(t[idx/4] >> ((idx % 4) * 8) & 0xFF)
}

// Fill sets every pixel to the given index.
func (t *Tile8) Fill(i color.Palette) {
	word := uint32(i)
	word |= word<<8 | word<<16 | word<<24
	for w := range t {
		t[w] = word
	}
}

// WriteTo uploads the tile into a character block slot through the
// 16 bit VRAM write path.
func (t *Tile8) WriteTo(mem *vram.Memory, charBlock, slot int) {
	base := charBlock*vram.CharBlockSize + slot*64
	for w, word := range t {
		mem.Write16(base+w*4, uint16(word))
		mem.Write16(base+w*4+2, uint16(word>>16))
	}
}
