package render

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-gbadraw/gbadraw/color"
	"github.com/valerio/go-gbadraw/gbadraw/display"
	"github.com/valerio/go-gbadraw/gbadraw/vram"
)

const (
	testPatternCount = 4
	targetFPS        = 30
	animationFrames  = 15

	checkerboardTileSize = 8
	stripeWidth          = 4
	diagonalTileSize     = 8

	stripeAnimationSpeed   = 2
	diagonalAnimationSpeed = 4
)

// RunTestPattern draws generated patterns through the Mode3 draw
// target and shows them in the terminal, to verify the whole pixel
// pipeline without an input image.
func RunTestPattern() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	slog.Info("Starting test pattern display")

	d := display.New(vram.New(), display.Mode3, vram.Page0)
	patternType := 0
	drawPattern(d, patternType, 0)

	running := true
	frameCount := 0

	go func() {
		for running {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					running = false
					return
				case tcell.KeyRune:
					if ev.Rune() == ' ' {
						patternType = (patternType + 1) % testPatternCount
						drawPattern(d, patternType, 0)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(time.Second / targetFPS)
	defer ticker.Stop()

	for running {
		<-ticker.C
		frameCount++

		if frameCount%animationFrames == 0 {
			drawPattern(d, patternType, frameCount/animationFrames)
		}

		DrawImage(screen, d, 0, 1)

		termWidth, termHeight := screen.Size()
		info := "Test Pattern Mode - Press SPACE to change pattern, ESC to exit"
		for i, ch := range info {
			if i < termWidth {
				screen.SetContent(i, termHeight-1, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
			}
		}

		patternName := []string{"Checkerboard", "Gradient", "Stripes", "Diagonal"}[patternType]
		for i, ch := range "Pattern: " + patternName {
			if i < termWidth {
				screen.SetContent(i, 0, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
			}
		}

		screen.Show()
	}

	return nil
}

// drawPattern fills the display through its pixel write path, the same
// route an image draw takes.
func drawPattern(d *display.Display, patternType, frame int) {
	w, h := d.Size()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.BGR555
			switch patternType {
			case 0: // checkerboard
				if ((x/checkerboardTileSize)+(y/checkerboardTileSize))%2 == 0 {
					c = color.White
				} else {
					c = color.Black
				}
			case 1: // horizontal gradient over the 5 bit range
				v := uint8(x * 0xFF / w)
				c = color.New(v, v, v)
			case 2: // vertical stripes
				if ((x+frame*stripeAnimationSpeed)/stripeWidth)%2 == 0 {
					c = color.White
				} else {
					c = color.Blue
				}
			case 3: // diagonal lines
				if ((x+y+frame*diagonalAnimationSpeed)/diagonalTileSize)%2 == 0 {
					c = color.Yellow
				} else {
					c = color.Magenta
				}
			}
			d.SetPixel(x, y, c)
		}
	}
}
