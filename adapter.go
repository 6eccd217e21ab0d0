package widecell

// MeasureWidth returns the display width in terminal columns of the first
// character of text, decoded per the encoding tag. A byte sequence that does
// not decode within the leading 3 bytes has width 0; so do non-printing and
// zero-width characters.
func MeasureWidth(encTag string, text []byte) int {
	r, _, ok := decodeFirst(lookupEncoding(encTag), text)
	if !ok {
		return 0
	}
	return RuneWidth(r)
}

// WriteChar writes the first character of text into the window referred to by
// h and returns the unconsumed suffix. HandleNone is a no-op that returns nil.
// A handle that does not refer to a live window fails with ErrInvalidArgument.
//
// See [Window.WriteChar] for the consumption and cursor rules.
func WriteChar(h Handle, encTag string, text []byte) ([]byte, error) {
	if h == HandleNone {
		return nil, nil
	}

	w, err := LookupWindow(h)
	if err != nil {
		return nil, err
	}
	return w.WriteChar(encTag, text), nil
}

// WriteChar writes the first character of text at the cursor and returns the
// unconsumed suffix. Callers loop this over successive suffixes to render a
// full string, one character per call.
//
// A first byte in the 7-bit ASCII range is written as-is and the cursor
// advances one column. Otherwise up to 3 leading bytes are decoded per the
// encoding tag: on success the character is written (wide characters take a
// spacer cell) and the cursor advances by its display width; on failure
// exactly one byte is consumed and nothing is rendered, keeping the render
// loop live on malformed input.
func (w *Window) WriteChar(encTag string, text []byte) []byte {
	if len(text) == 0 {
		return nil
	}

	row, col := w.cursor.Row, w.cursor.Col

	if text[0] > 0x7F {
		r, size, ok := decodeFirst(lookupEncoding(encTag), text)
		if !ok {
			// Unrenderable unit: skip one byte, render nothing.
			return text[1:]
		}
		width := w.putRune(row, col, r)
		w.Move(row, col+width)
		return text[size:]
	}

	w.putRune(row, col, rune(text[0]))
	w.Move(row, col+1)
	return text[1:]
}

// WriteString renders a full byte string by looping WriteChar over successive
// suffixes until the input is exhausted.
func (w *Window) WriteString(encTag string, text []byte) {
	for len(text) > 0 {
		text = w.WriteChar(encTag, text)
	}
}

// putRune writes r at (row, col) with the window's template attributes and
// returns its display width. Wide characters get a spacer cell at col+1.
// Out-of-bounds cells are silently skipped.
func (w *Window) putRune(row, col int, r rune) int {
	width := RuneWidth(r)

	if cell := w.Cell(row, col); cell != nil {
		cell.Char = r
		cell.Fg = w.template.Fg
		cell.Bg = w.template.Bg
		cell.Flags = w.template.Flags
		if width == 2 {
			cell.SetFlag(CellFlagWideChar)
		} else {
			cell.ClearFlag(CellFlagWideChar | CellFlagWideCharSpacer)
		}
		cell.MarkDirty()
		w.hasDirty = true
	}

	if width == 2 {
		if spacer := w.Cell(row, col+1); spacer != nil {
			spacer.Reset()
			spacer.Fg = w.template.Fg
			spacer.Bg = w.template.Bg
			spacer.SetFlag(CellFlagWideCharSpacer)
			spacer.MarkDirty()
			w.hasDirty = true
		}
	}

	return width
}
