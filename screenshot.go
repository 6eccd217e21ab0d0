package widecell

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultForeground is the color used for cells with a nil foreground.
var DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}

// DefaultBackground is the color used for cells with a nil background.
var DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// ScreenshotConfig controls how a window is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA

	// CursorColor is the cursor color. If nil, the cursor cell is inverted.
	CursorColor *color.RGBA

	// ShowCursor controls whether to render the cursor. Default true.
	ShowCursor *bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the window to an RGBA image using default settings.
func (w *Window) Screenshot() *image.RGBA {
	return w.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the window to an RGBA image with custom font,
// colors, and cursor settings. Wide characters are drawn once over both of
// their cells; spacer cells only contribute background.
func (w *Window) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}

	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}

	showCursor := true
	if cfg.ShowCursor != nil {
		showCursor = *cfg.ShowCursor
	}

	imgWidth := w.cols * cellWidth
	imgHeight := w.rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, *defaultBG)
		}
	}

	for row := 0; row < w.rows; row++ {
		for col := 0; col < w.cols; col++ {
			cell := w.Cell(row, col)
			if cell == nil {
				continue
			}

			x := col * cellWidth
			y := row * cellHeight

			fg := resolveColor(cell.Fg, *defaultFG)
			bg := resolveColor(cell.Bg, *defaultBG)

			if cell.HasFlag(CellFlagReverse) {
				fg, bg = bg, fg
			}

			if cell.HasFlag(CellFlagDim) {
				fg = color.RGBA{
					R: uint8(float64(fg.R) * 0.66),
					G: uint8(float64(fg.G) * 0.66),
					B: uint8(float64(fg.B) * 0.66),
					A: fg.A,
				}
			}

			// Fill cell background
			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, y+py, bg)
				}
			}

			if cell.IsWideSpacer() {
				continue
			}

			ch := cell.Char
			if ch == 0 || ch == ' ' {
				continue
			}

			baseline := y + face.Metrics().Ascent.Ceil()

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(ch))

			if cell.HasFlag(CellFlagUnderline) {
				drawWidth := cellWidth
				if cell.IsWide() {
					drawWidth = cellWidth * 2
				}
				underlineY := baseline + 2
				for px := 0; px < drawWidth; px++ {
					if x+px < imgWidth && underlineY < imgHeight {
						img.Set(x+px, underlineY, fg)
					}
				}
			}
		}
	}

	if showCursor && w.cursor.Visible {
		cursorX := w.cursor.Col * cellWidth
		cursorY := w.cursor.Row * cellHeight

		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				cx, cy := cursorX+px, cursorY+py
				if cx >= imgWidth || cy >= imgHeight {
					continue
				}
				if cfg.CursorColor != nil {
					img.Set(cx, cy, *cfg.CursorColor)
				} else {
					existing := img.RGBAAt(cx, cy)
					img.Set(cx, cy, color.RGBA{
						R: 255 - existing.R,
						G: 255 - existing.G,
						B: 255 - existing.B,
						A: 255,
					})
				}
			}
		}
	}

	return img
}

// resolveColor converts a cell color to RGBA, substituting the default for nil.
func resolveColor(c color.Color, def color.RGBA) color.RGBA {
	if c == nil {
		return def
	}
	if v, ok := c.(color.RGBA); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}
