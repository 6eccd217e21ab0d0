package widecell

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"UTF-8", "utf8"},
		{"Shift_JIS", "shiftjis"},
		{"shift-jis", "shiftjis"},
		{"ISO 8859-1", "iso88591"},
		{"euc_kr", "euckr"},
		{"", ""},
	}

	for _, tt := range tests {
		got := normalizeTag(tt.tag)
		if got != tt.expected {
			t.Errorf("normalizeTag(%q) = %q, want %q", tt.tag, got, tt.expected)
		}
	}
}

func TestLookupEncoding(t *testing.T) {
	// UTF-8 and its aliases decode directly
	if lookupEncoding("") != nil {
		t.Error("expected nil encoding for empty tag")
	}
	if lookupEncoding("utf-8") != nil {
		t.Error("expected nil encoding for utf-8")
	}
	if lookupEncoding("US-ASCII") != nil {
		t.Error("expected nil encoding for us-ascii")
	}

	// Common spellings
	if lookupEncoding("latin1") != charmap.ISO8859_1 {
		t.Error("expected ISO8859_1 for latin1")
	}
	if lookupEncoding("Shift_JIS") != japanese.ShiftJIS {
		t.Error("expected ShiftJIS for Shift_JIS")
	}
	if lookupEncoding("euc-kr") != korean.EUCKR {
		t.Error("expected EUCKR for euc-kr")
	}

	// Unlisted tags resolve through the IANA index
	if lookupEncoding("ISO-8859-2") == nil {
		t.Error("expected IANA lookup to resolve ISO-8859-2")
	}

	// Unknown tags fall back to UTF-8
	if lookupEncoding("no-such-encoding") != nil {
		t.Error("expected unknown tag to fall back to UTF-8")
	}
}

func TestDecodeFirstUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wantRune rune
		wantSize int
		wantOK   bool
	}{
		{"ascii", []byte("Abc"), 'A', 1, true},
		{"nul", []byte{0x00}, 0, 1, true},
		{"two byte", []byte("é"), 'é', 2, true},
		{"three byte", []byte("中文"), '中', 3, true},
		{"four byte exceeds limit", []byte("😀"), 0, 0, false},
		{"invalid lead", []byte{0xFF, 'A'}, 0, 0, false},
		{"truncated sequence", []byte{0xE4, 0xB8}, 0, 0, false},
		{"empty", nil, 0, 0, false},
	}

	for _, tt := range tests {
		r, size, ok := decodeFirst(nil, tt.input)
		if r != tt.wantRune || size != tt.wantSize || ok != tt.wantOK {
			t.Errorf("%s: decodeFirst = (%q, %d, %v), want (%q, %d, %v)",
				tt.name, r, size, ok, tt.wantRune, tt.wantSize, tt.wantOK)
		}
	}
}

func TestDecodeFirstCharmap(t *testing.T) {
	// Latin-1 0xE9 is é, one byte
	r, size, ok := decodeFirst(charmap.ISO8859_1, []byte{0xE9, 'x'})
	if !ok || r != 'é' || size != 1 {
		t.Errorf("latin1: decodeFirst = (%q, %d, %v), want ('é', 1, true)", r, size, ok)
	}
}

func TestDecodeFirstShiftJIS(t *testing.T) {
	// あ in Shift-JIS is 0x82 0xA0
	r, size, ok := decodeFirst(japanese.ShiftJIS, []byte{0x82, 0xA0, 'x'})
	if !ok || r != 'あ' || size != 2 {
		t.Errorf("shift_jis: decodeFirst = (%q, %d, %v), want ('あ', 2, true)", r, size, ok)
	}

	// A lone lead byte never completes
	_, _, ok = decodeFirst(japanese.ShiftJIS, []byte{0x82})
	if ok {
		t.Error("expected decode failure for truncated Shift-JIS sequence")
	}
}

func TestDecodeFirstEUCKR(t *testing.T) {
	// 한 in EUC-KR is 0xC7 0xD1
	r, size, ok := decodeFirst(korean.EUCKR, []byte{0xC7, 0xD1})
	if !ok || r != '한' || size != 2 {
		t.Errorf("euc-kr: decodeFirst = (%q, %d, %v), want ('한', 2, true)", r, size, ok)
	}
}
