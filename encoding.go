package widecell

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// maxSeqBytes is the maximum number of leading bytes examined when decoding
// one character. Sequences longer than this are treated as decode failures.
const maxSeqBytes = 3

// lookupEncoding maps an encoding tag to a decoder. A nil result means UTF-8
// (decoded directly, no transformation). Tags are not validated against a
// fixed set: common spellings are matched first, anything else goes through
// the IANA index, and unknown tags fall back to UTF-8.
func lookupEncoding(tag string) encoding.Encoding {
	switch normalizeTag(tag) {
	case "", "utf8":
		return nil
	case "ascii", "usascii":
		return nil
	case "latin1", "iso88591", "l1":
		return charmap.ISO8859_1
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gbk", "gb2312", "cp936":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "big5", "cp950":
		return traditionalchinese.Big5
	default:
		if e, err := ianaindex.IANA.Encoding(tag); err == nil && e != nil {
			return e
		}
		return nil
	}
}

// normalizeTag lowercases a tag and strips separators, so "Shift_JIS",
// "shift-jis", and "shiftjis" all match.
func normalizeTag(tag string) string {
	var b strings.Builder
	b.Grow(len(tag))
	for _, r := range strings.ToLower(tag) {
		if r == '-' || r == '_' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decodeFirst decodes the first character from at most maxSeqBytes leading
// bytes of b. A nil encoding means UTF-8. Returns the decoded rune, the number
// of source bytes consumed, and whether decoding succeeded.
func decodeFirst(e encoding.Encoding, b []byte) (rune, int, bool) {
	if len(b) == 0 {
		return 0, 0, false
	}

	if e == nil {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError || size > maxSeqBytes {
			return 0, 0, false
		}
		return r, size, true
	}

	// Try successively longer prefixes until one decodes to exactly one
	// valid rune. Incomplete or unmapped prefixes come back as U+FFFD.
	limit := maxSeqBytes
	if len(b) < limit {
		limit = len(b)
	}
	for n := 1; n <= limit; n++ {
		out, err := e.NewDecoder().Bytes(b[:n])
		if err != nil {
			continue
		}
		r, size := utf8.DecodeRune(out)
		if r == utf8.RuneError || size != len(out) {
			continue
		}
		return r, n, true
	}

	return 0, 0, false
}
