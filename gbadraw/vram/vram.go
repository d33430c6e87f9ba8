// Package vram models the Game Boy Advance video memory region that
// the bitmap display modes and tile character blocks live in.
//
// On hardware this is a fixed 96 KiB block at 0x06000000. Here it is an
// explicitly-owned handle over a byte region of identical layout, so
// the same code runs against real memory-mapped VRAM or an in-memory
// buffer in tests. It is passed into every operation rather than held
// as a package global.
package vram

import "github.com/valerio/go-gbadraw/gbadraw/bit"

// Size is the full VRAM region in bytes.
const Size = 0x18000

// PageSize is the size of one display page in the page-flipped modes
// (Mode4 and Mode5). Page 1 starts at this offset.
const PageSize = 0xA000

// CharBlockSize is the size of one tile character block. VRAM holds
// four of them back to back.
const CharBlockSize = 0x4000

// Page selects which of the two display pages a paged mode draws into.
type Page int

const (
	Page0 Page = 0
	Page1 Page = 1
)

// Base returns the byte offset of the page within the region.
func (p Page) Base() int {
	if p == Page1 {
		return PageSize
	}
	return 0
}

// Memory is a handle to a VRAM-shaped byte region. The zero value is
// not usable; construct one with New or Wrap.
type Memory struct {
	data []byte
}

// New returns a Memory backed by a fresh in-memory region.
func New() *Memory {
	return &Memory{data: make([]byte, Size)}
}

// Wrap returns a Memory over an existing region, which must be exactly
// Size bytes. This is how a memory-mapped hardware region is adopted.
func Wrap(data []byte) *Memory {
	if len(data) != Size {
		return nil
	}
	return &Memory{data: data}
}

// Read16 reads the halfword at the given even byte offset.
func (m *Memory) Read16(offset int) uint16 {
	return bit.Combine(m.data[offset+1], m.data[offset])
}

// Write16 writes a halfword at the given even byte offset. VRAM is a
// 16 bit bus; this is the native store width.
func (m *Memory) Write16(offset int, value uint16) {
	m.data[offset] = bit.Low(value)
	m.data[offset+1] = bit.High(value)
}

// WriteByte stores a single byte by reading the containing halfword,
// replacing one half and writing it back. The hardware has no 8 bit
// VRAM store, so byte-granular writers (Mode4 pixels, tile nibbles)
// must go through this read-modify-write.
func (m *Memory) WriteByte(offset int, value uint8) {
	aligned := offset &^ 1
	half := m.Read16(aligned)
	if offset&1 == 0 {
		half = bit.Combine(bit.High(half), value)
	} else {
		half = bit.Combine(value, bit.Low(half))
	}
	m.Write16(aligned, half)
}

// ReadByte reads a single byte from the region.
func (m *Memory) ReadByte(offset int) uint8 {
	return m.data[offset]
}

// Bytes exposes the backing region. Useful for bulk uploads (DMA-style
// copies) and for inspecting the raw layout in tests.
func (m *Memory) Bytes() []byte {
	return m.data
}
