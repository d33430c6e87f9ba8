package display

import (
	"image"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-gbadraw/gbadraw/color"
	"github.com/valerio/go-gbadraw/gbadraw/palram"
	"github.com/valerio/go-gbadraw/gbadraw/vram"
)

func TestModeGeometry(t *testing.T) {
	tests := []struct {
		mode     Mode
		w, h     int
		bpp      int
		paletted bool
		paged    bool
	}{
		{Mode3, 240, 160, 2, false, false},
		{Mode4, 240, 160, 1, true, true},
		{Mode5, 160, 128, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			w, h := tt.mode.Size()
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.bpp, tt.mode.BytesPerPixel())
			assert.Equal(t, tt.paletted, tt.mode.Paletted())
			assert.Equal(t, tt.paged, tt.mode.Paged())
		})
	}
}

func TestPixOffset(t *testing.T) {
	mem := vram.New()

	tests := []struct {
		name     string
		mode     Mode
		page     vram.Page
		x, y     int
		expected int
	}{
		{"Mode3 origin", Mode3, vram.Page0, 0, 0, 0},
		{"Mode3 one right", Mode3, vram.Page0, 1, 0, 2},
		{"Mode3 one down", Mode3, vram.Page0, 0, 1, 480},
		{"Mode3 last pixel", Mode3, vram.Page0, 239, 159, (160*240 - 1) * 2},
		{"Mode4 one right", Mode4, vram.Page0, 1, 0, 1},
		{"Mode4 one down", Mode4, vram.Page0, 0, 1, 240},
		{"Mode4 page 1 origin", Mode4, vram.Page1, 0, 0, 0xA000},
		{"Mode5 one down", Mode5, vram.Page0, 0, 1, 320},
		{"Mode5 page 1 one down", Mode5, vram.Page1, 0, 1, 0xA000 + 320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(mem, tt.mode, tt.page)
			assert.Equal(t, tt.expected, d.PixOffset(tt.x, tt.y))
		})
	}
}

func TestPixOffsetRowMajorOrder(t *testing.T) {
	// offsets must be unique and strictly increasing in row-major
	// traversal order
	d := New(vram.New(), Mode3, vram.Page0)
	w, h := d.Size()

	prev := -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := d.PixOffset(x, y)
			if off <= prev {
				t.Fatalf("offset at (%d,%d) = %d, not greater than previous %d", x, y, off, prev)
			}
			prev = off
		}
	}
}

func TestSetPixelWritesVRAM(t *testing.T) {
	mem := vram.New()
	d := New(mem, Mode3, vram.Page0)

	d.SetPixel(0, 0, color.Red)
	d.SetPixel(1, 0, color.Green)
	d.SetPixel(0, 1, color.Blue)

	assert.Equal(t, uint16(color.Red), mem.Read16(0))
	assert.Equal(t, uint16(color.Green), mem.Read16(2))
	assert.Equal(t, uint16(color.Blue), mem.Read16(480))

	assert.Equal(t, color.Red, d.Pixel(0, 0))
	assert.Equal(t, color.Green, d.Pixel(1, 0))
}

func TestCoordinateClipping(t *testing.T) {
	mem := vram.New()
	d := New(mem, Mode3, vram.Page0)

	// the far corner is valid
	d.SetPixel(239, 159, color.White)
	assert.Equal(t, color.White, d.Pixel(239, 159))

	// one past the edge is not: the write must be dropped, never wrapped
	d.SetPixel(240, 0, color.Red)
	d.SetPixel(0, 160, color.Red)
	d.SetPixel(-1, 0, color.Red)
	d.SetPixel(0, -1, color.Red)

	for off := 0; off < 240*160*2; off += 2 {
		if v := mem.Read16(off); v != 0 && v != uint16(color.White) {
			t.Fatalf("out-of-range write leaked into VRAM at offset %d: %04X", off, v)
		}
	}
	assert.Equal(t, color.White, d.Pixel(239, 159))
}

func TestMode4IndexPacking(t *testing.T) {
	mem := vram.New()
	d := New(mem, Mode4, vram.Page0)

	// adjacent pixels share a halfword; each byte write must preserve
	// its neighbor
	d.SetIndex(0, 0, 0x11)
	d.SetIndex(1, 0, 0x22)
	assert.Equal(t, uint16(0x2211), mem.Read16(0))

	d.SetIndex(0, 0, 0x33)
	assert.Equal(t, uint16(0x2233), mem.Read16(0))

	assert.Equal(t, color.Palette(0x33), d.Index(0, 0))
	assert.Equal(t, color.Palette(0x22), d.Index(1, 0))
}

func TestMismatchedColorKindIsNoOp(t *testing.T) {
	mem := vram.New()

	direct := New(mem, Mode3, vram.Page0)
	direct.SetIndex(0, 0, 0x7F)
	assert.Equal(t, uint16(0), mem.Read16(0))

	paletted := New(mem, Mode4, vram.Page0)
	paletted.SetPixel(0, 0, color.White)
	assert.Equal(t, uint16(0), mem.Read16(0))
}

func TestPagesDoNotOverlap(t *testing.T) {
	mem := vram.New()
	front := New(mem, Mode5, vram.Page0)
	back := New(mem, Mode5, vram.Page1)

	front.SetPixel(0, 0, color.Red)
	back.SetPixel(0, 0, color.Blue)

	assert.Equal(t, color.Red, front.Pixel(0, 0))
	assert.Equal(t, color.Blue, back.Pixel(0, 0))
	assert.Equal(t, uint16(color.Blue), mem.Read16(0xA000))
}

func TestClear(t *testing.T) {
	mem := vram.New()
	d := New(mem, Mode3, vram.Page0)

	d.Clear(color.Cyan)
	assert.Equal(t, color.Cyan, d.Pixel(0, 0))
	assert.Equal(t, color.Cyan, d.Pixel(239, 159))
	assert.Equal(t, color.Cyan, d.Pixel(120, 80))
}

func TestClearIndex(t *testing.T) {
	mem := vram.New()
	d := New(mem, Mode4, vram.Page1)

	d.ClearIndex(0x5A)
	assert.Equal(t, color.Palette(0x5A), d.Index(0, 0))
	assert.Equal(t, color.Palette(0x5A), d.Index(239, 159))
	assert.Equal(t, uint16(0x5A5A), mem.Read16(0xA000))
}

func TestDrawImageInterop(t *testing.T) {
	// any image/draw based code can render straight into VRAM
	d := New(vram.New(), Mode3, vram.Page0)

	src := image.NewUniform(color.Yellow)
	draw.Draw(d, image.Rect(10, 10, 20, 20), src, image.Point{}, draw.Src)

	assert.Equal(t, color.Yellow, d.Pixel(10, 10))
	assert.Equal(t, color.Yellow, d.Pixel(19, 19))
	assert.Equal(t, color.Black, d.Pixel(9, 10))
	assert.Equal(t, color.Black, d.Pixel(20, 20))
}

func TestAtResolvesThroughPalette(t *testing.T) {
	pal := palram.New()
	pal.SetBG(7, color.Magenta)

	d := New(vram.New(), Mode4, vram.Page0).WithPalette(pal)
	d.SetIndex(3, 4, 7)

	assert.Equal(t, color.Magenta, d.At(3, 4))
	assert.Equal(t, color.Black, d.At(0, 0))
}

func TestDrawPixelSequence(t *testing.T) {
	d := New(vram.New(), Mode5, vram.Page0)

	Draw(d, []Pixel{
		{X: 0, Y: 0, C: color.Red},
		{X: 159, Y: 127, C: color.Green},
		{X: 160, Y: 0, C: color.Blue}, // clipped
	})

	assert.Equal(t, color.Red, d.Pixel(0, 0))
	assert.Equal(t, color.Green, d.Pixel(159, 127))
}
