// Package palram models the 1 KiB palette RAM region: 256 background
// colors followed by 256 object colors, one BGR555 halfword each.
// Like VRAM it sits on a 16 bit bus, and like VRAM it is handled as an
// explicitly-owned region rather than a global.
package palram

import (
	"github.com/valerio/go-gbadraw/gbadraw/bit"
	"github.com/valerio/go-gbadraw/gbadraw/color"
)

// Size is the full palette RAM region in bytes.
const Size = 0x400

// objBase is the byte offset of the object palette half.
const objBase = 0x200

// Memory is a handle to a palette RAM shaped region.
type Memory struct {
	data []byte
}

// New returns a Memory backed by a fresh in-memory region.
func New() *Memory {
	return &Memory{data: make([]byte, Size)}
}

func (m *Memory) read(offset int) color.BGR555 {
	return color.BGR555(bit.Combine(m.data[offset+1], m.data[offset]))
}

func (m *Memory) write(offset int, c color.BGR555) {
	m.data[offset] = bit.Low(uint16(c))
	m.data[offset+1] = bit.High(uint16(c))
}

// SetBG stores a color in the background palette. Slot 0 is the
// backdrop color; for tiles it means transparent.
func (m *Memory) SetBG(index uint8, c color.BGR555) {
	m.write(int(index)*2, c)
}

// BG returns the background palette color at the given slot.
func (m *Memory) BG(index uint8) color.BGR555 {
	return m.read(int(index) * 2)
}

// SetObj stores a color in the object (sprite) palette.
func (m *Memory) SetObj(index uint8, c color.BGR555) {
	m.write(objBase+int(index)*2, c)
}

// Obj returns the object palette color at the given slot.
func (m *Memory) Obj(index uint8) color.BGR555 {
	return m.read(objBase + int(index)*2)
}
