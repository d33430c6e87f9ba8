package render

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
)

const frameTime = time.Second / 30

// TerminalPreview displays an image in the terminal. Each character
// cell covers two vertically stacked pixels, rendered with a half
// block glyph and true color foreground/background.
type TerminalPreview struct {
	screen  tcell.Screen
	img     image.Image
	running bool
}

func NewTerminalPreview(img image.Image) (*TerminalPreview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return &TerminalPreview{
		screen:  screen,
		img:     img,
		running: true,
	}, nil
}

// Run shows the image until ESC, 'q' or an interrupt signal.
func (t *TerminalPreview) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	go t.handleInput()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for t.running {
		select {
		case <-ticker.C:
			t.render()
			t.screen.Show()
		case <-signals:
			t.running = false
			slog.Info("Received signal to stop")
			return nil
		}
	}

	return nil
}

func (t *TerminalPreview) handleInput() {
	for t.running {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				t.running = false
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					t.running = false
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalPreview) render() {
	DrawImage(t.screen, t.img, 0, 0)
}

// DrawImage renders an image onto a tcell screen at the given cell
// offset, two pixel rows per terminal row.
func DrawImage(screen tcell.Screen, img image.Image, offsetX, offsetY int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := cellColor(img.At(x, y))
			bottom := tcell.ColorBlack
			if y+1 < b.Max.Y {
				bottom = cellColor(img.At(x, y+1))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(offsetX+x-b.Min.X, offsetY+(y-b.Min.Y)/2, '▀', nil, style)
		}
	}
}

func cellColor(c stdcolor.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
