// Package widecell draws multi-byte characters into a headless
// character-cell window, one character per call.
//
// The package grew out of terminal UIs that render text in an arbitrary
// byte encoding into a curses-style window: the renderer walks a byte
// string, writes one character per step, and needs to know how many
// terminal columns each character occupies so it can wrap and align.
// widecell provides exactly that loop primitive plus the width query,
// with the window kept headless so it can also back tests and
// off-screen rendering.
//
// # Quick Start
//
// Create a window and write a string one character at a time:
//
//	win := widecell.New(widecell.WithSize(24, 80))
//	text := []byte("width: 中文")
//	for len(text) > 0 {
//	    text = win.WriteChar("utf-8", text)
//	}
//	fmt.Println(win.String()) // "width: 中文"
//
// Each WriteChar call consumes exactly one character (or one byte, if
// the leading bytes do not decode) and returns the unconsumed suffix.
// Wide characters (CJK, fullwidth forms) occupy two cells: the second
// cell is a spacer that rendering code should skip.
//
// # Encodings
//
// The encoding tag selects how bytes are decoded. Common spellings
// ("utf-8", "latin1", "shift_jis", "euc-kr", ...) are recognized
// directly, anything else is resolved through the IANA index, and an
// unknown or empty tag falls back to UTF-8. Decode failures are not
// errors: the offending byte is consumed and nothing is rendered, so a
// rendering loop stays live on malformed input.
//
// # Widths
//
// [MeasureWidth] reports the display width of the first character of a
// byte string without touching a window:
//
//	widecell.MeasureWidth("utf-8", []byte("中")) // 2
//	widecell.MeasureWidth("utf-8", []byte("A"))  // 1
//
// # Handles
//
// For callers that hold windows across a foreign boundary, windows can
// be registered in a process-wide table and addressed by an opaque
// [Handle]:
//
//	h := widecell.RegisterWindow(win)
//	rest, err := widecell.WriteChar(h, "utf-8", text)
//	widecell.ReleaseWindow(h)
//
// [HandleNone] is a valid argument to [WriteChar] and makes the call a
// no-op. [HandleSize] reports the in-memory size of the window
// structure for callers that manage raw layouts.
//
// # Screenshots
//
// A window can be rendered to an image for debugging or golden tests:
//
//	img := win.Screenshot()
//	png.Encode(file, img)
//
// # Thread Safety
//
// A Window is owned by one logical thread of control at a time, as in a
// typical terminal event loop, and performs no internal locking. Only
// the process-wide handle table is safe for concurrent use.
package widecell
