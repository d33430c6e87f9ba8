package render

import (
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-gbadraw/gbadraw/color"
	"github.com/valerio/go-gbadraw/gbadraw/tga"
)

func TestSavePNGToDir(t *testing.T) {
	img := tga.NewImage(16, 8)
	for i := range img.Pix {
		img.Pix[i] = color.Green
	}

	dir := t.TempDir()
	path, err := SavePNGToDir(img, "frame", dir)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".png"))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	assert.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r>>8)
	assert.Equal(t, uint32(0xFF), g>>8)
	assert.Equal(t, uint32(0), b>>8)
}
