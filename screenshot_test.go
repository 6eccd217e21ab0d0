package widecell

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func defaultCellSize() (int, int) {
	face := basicfont.Face7x13
	adv, _ := face.GlyphAdvance('M')
	return adv.Ceil(), face.Metrics().Height.Ceil()
}

func TestScreenshotDimensions(t *testing.T) {
	win := New(WithSize(2, 4))
	img := win.Screenshot()

	cw, ch := defaultCellSize()
	if img.Bounds().Dx() != 4*cw || img.Bounds().Dy() != 2*ch {
		t.Errorf("expected %dx%d image, got %dx%d", 4*cw, 2*ch, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestScreenshotCustomCellSize(t *testing.T) {
	win := New(WithSize(3, 5))
	img := win.ScreenshotWithConfig(&ScreenshotConfig{CellWidth: 10, CellHeight: 20})

	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 60 {
		t.Errorf("expected 50x60 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestScreenshotBackground(t *testing.T) {
	win := New(WithSize(2, 2))
	show := false
	img := win.ScreenshotWithConfig(&ScreenshotConfig{ShowCursor: &show})

	if got := img.RGBAAt(0, 0); got != DefaultBackground {
		t.Errorf("expected default background at (0,0), got %v", got)
	}
}

func TestScreenshotCursorInverts(t *testing.T) {
	win := New(WithSize(2, 2))
	img := win.Screenshot()

	// Cursor sits at (0,0) over the default background; inversion of black is white.
	want := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("expected inverted cursor pixel %v, got %v", want, got)
	}
}

func TestScreenshotReverseVideo(t *testing.T) {
	win := New(WithSize(3, 3))
	cell := NewCell()
	cell.SetFlag(CellFlagReverse)
	win.SetCell(1, 1, cell)

	show := false
	img := win.ScreenshotWithConfig(&ScreenshotConfig{ShowCursor: &show})

	cw, ch := defaultCellSize()
	if got := img.RGBAAt(cw, ch); got != DefaultForeground {
		t.Errorf("expected reversed cell background %v, got %v", DefaultForeground, got)
	}
}

func TestScreenshotCursorColor(t *testing.T) {
	win := New(WithSize(2, 2))
	red := color.RGBA{R: 255, A: 255}
	img := win.ScreenshotWithConfig(&ScreenshotConfig{CursorColor: &red})

	if got := img.RGBAAt(0, 0); got != red {
		t.Errorf("expected cursor color %v, got %v", red, got)
	}
}
