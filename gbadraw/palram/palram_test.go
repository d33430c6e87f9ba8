package palram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-gbadraw/gbadraw/color"
)

func TestBGPalette(t *testing.T) {
	m := New()

	m.SetBG(0, color.Black)
	m.SetBG(1, color.White)
	m.SetBG(255, color.Magenta)

	assert.Equal(t, color.Black, m.BG(0))
	assert.Equal(t, color.White, m.BG(1))
	assert.Equal(t, color.Magenta, m.BG(255))
}

func TestObjPaletteIsSeparate(t *testing.T) {
	m := New()

	m.SetBG(5, color.Red)
	m.SetObj(5, color.Blue)

	assert.Equal(t, color.Red, m.BG(5))
	assert.Equal(t, color.Blue, m.Obj(5))

	// slot 0 of each half stays independent too
	m.SetObj(0, color.Cyan)
	assert.Equal(t, color.Black, m.BG(0))
	assert.Equal(t, color.Cyan, m.Obj(0))
}
