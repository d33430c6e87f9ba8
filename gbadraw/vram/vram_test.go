package vram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteRead16(t *testing.T) {
	m := New()

	m.Write16(0, 0xABCD)
	assert.Equal(t, uint16(0xABCD), m.Read16(0))

	// little endian byte order in the region
	assert.Equal(t, uint8(0xCD), m.ReadByte(0))
	assert.Equal(t, uint8(0xAB), m.ReadByte(1))

	m.Write16(Size-2, 0x1234)
	assert.Equal(t, uint16(0x1234), m.Read16(Size-2))
}

func TestWriteByteReadModifyWrite(t *testing.T) {
	m := New()
	m.Write16(0x100, 0xAABB)

	// low byte replaced, high byte preserved
	m.WriteByte(0x100, 0x11)
	assert.Equal(t, uint16(0xAA11), m.Read16(0x100))

	// high byte replaced, low byte preserved
	m.WriteByte(0x101, 0x22)
	assert.Equal(t, uint16(0x2211), m.Read16(0x100))
}

func TestWrap(t *testing.T) {
	backing := make([]byte, Size)
	m := Wrap(backing)
	assert.NotNil(t, m)

	m.Write16(4, 0xBEEF)
	assert.Equal(t, uint8(0xEF), backing[4])
	assert.Equal(t, uint8(0xBE), backing[5])

	assert.Nil(t, Wrap(make([]byte, Size-1)))
	assert.Nil(t, Wrap(nil))
}

func TestPageBase(t *testing.T) {
	assert.Equal(t, 0, Page0.Base())
	assert.Equal(t, PageSize, Page1.Base())
	assert.Equal(t, 0xA000, Page1.Base())
}
