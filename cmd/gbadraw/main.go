package main

import (
	"fmt"
	stdcolor "image/color"
	"image/draw"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/valerio/go-gbadraw/gbadraw/color"
	"github.com/valerio/go-gbadraw/gbadraw/convert"
	"github.com/valerio/go-gbadraw/gbadraw/display"
	"github.com/valerio/go-gbadraw/gbadraw/palram"
	"github.com/valerio/go-gbadraw/gbadraw/render"
	"github.com/valerio/go-gbadraw/gbadraw/tga"
	"github.com/valerio/go-gbadraw/gbadraw/vram"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbadraw"
	app.Description = "Converts images into GBA 15-bit TGA files and previews them"
	app.Usage = "gbadraw [options] <image file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "preview",
			Usage: "Render the converted image in the terminal",
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of converting (for debugging display)",
		},
		cli.IntFlag{
			Name:  "mode",
			Usage: "Bitmap mode to render into: 3, 4 or 5",
			Value: 3,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save a PNG render of the framebuffer (headless)",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running gbadraw", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("test-pattern") {
		slog.Info("Running in test pattern mode")
		return render.RunTestPattern()
	}

	// No source image: print usage and exit cleanly.
	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return nil
	}

	srcPath := c.Args().First()
	outPath, err := convert.File(srcPath)
	if err != nil {
		return err
	}
	slog.Info("Wrote TGA", "path", outPath)

	snapshotDir := c.String("snapshot-dir")
	if !c.Bool("preview") && snapshotDir == "" {
		return nil
	}

	mode, err := parseMode(c.Int("mode"))
	if err != nil {
		return err
	}

	f, err := os.Open(outPath)
	if err != nil {
		return err
	}
	img, err := tga.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	d := newDisplay(mode)
	blit(d, img)

	if snapshotDir != "" {
		if err := os.MkdirAll(snapshotDir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %v", err)
		}
		baseName := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
		if _, err := render.SavePNGToDir(d, baseName, snapshotDir); err != nil {
			return err
		}
	}

	if c.Bool("preview") {
		preview, err := render.NewTerminalPreview(d)
		if err != nil {
			return err
		}
		return preview.Run()
	}

	return nil
}

func parseMode(n int) (display.Mode, error) {
	switch n {
	case 3:
		return display.Mode3, nil
	case 4:
		return display.Mode4, nil
	case 5:
		return display.Mode5, nil
	default:
		return 0, fmt.Errorf("unknown bitmap mode %d (want 3, 4 or 5)", n)
	}
}

// newDisplay builds a draw target over an in-memory VRAM region. Mode4
// gets a grayscale ramp palette so indexed renders stay viewable.
func newDisplay(mode display.Mode) *display.Display {
	d := display.New(vram.New(), mode, vram.Page0)
	if mode.Paletted() {
		pal := palram.New()
		for i := 0; i < 256; i++ {
			v := uint8(i)
			pal.SetBG(v, color.New(v, v, v))
		}
		d.WithPalette(pal)
	}
	return d
}

// blit copies a decoded image into the display. Direct color modes go
// through the generic draw path; Mode4 maps luminance onto its ramp.
func blit(d *display.Display, img *tga.Image) {
	if !d.Mode().Paletted() {
		draw.Draw(d, d.Bounds(), img, img.Bounds().Min, draw.Src)
		return
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := stdcolor.GrayModel.Convert(img.At(x, y)).(stdcolor.Gray)
			d.SetIndex(x-b.Min.X, y-b.Min.Y, color.Palette(gray.Y))
		}
	}
}
