package widecell

import "github.com/unilibs/uniwidth"

// RuneWidth returns the display width of a rune: 2 for wide characters (CJK,
// fullwidth forms), 1 for normal, 0 for zero-width (combining marks, control
// characters). Undefined widths are normalized to 0.
func RuneWidth(r rune) int {
	if w := uniwidth.RuneWidth(r); w > 0 {
		return w
	}
	return 0
}

// IsWideRune returns true if the rune occupies 2 columns.
func IsWideRune(r rune) bool {
	return RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
