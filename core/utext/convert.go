package utext

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ToUTF16 converts a UTF-8 string to a slice of UTF-16 code units.
//
// This is implemented against the standard library's unicode/utf16
// rather than golang.org/x/text/encoding/unicode: the rest of the engine
// (cluster indices, line Start/End, break-library offsets) is natively a
// []uint16 code-unit sequence, and x/text/encoding/unicode is a
// byte-stream transcoder (io.Reader/Writer, charmap.Decoder) — it has no
// API that returns []uint16 directly, so it would buy nothing here beyond
// an extra allocation and a round-trip through bytes.
func ToUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromUTF16 converts a slice of UTF-16 code units back to a UTF-8 string.
func FromUTF16(buf []uint16) string {
	return string(utf16.Decode(buf))
}

// FromUTF32 converts a slice of UTF-32 code points (runes) to a UTF-8 string.
func FromUTF32(runes []rune) string {
	return string(runes)
}

// ToUTF32 converts a UTF-8 string to its UTF-32 code points.
func ToUTF32(s string) []rune {
	return []rune(s)
}

// DecodeRuneInUTF16 decodes the rune starting at code-unit index i in buf,
// returning the rune and its width in UTF-16 code units (1 or 2 for a
// surrogate pair). Used by the font-run itemizer (spec §4.4.1), which
// must assign a font per code point, not per code unit.
func DecodeRuneInUTF16(buf []uint16, i int) (r rune, width int) {
	if i < 0 || i >= len(buf) {
		return utf8.RuneError, 0
	}
	r1 := rune(buf[i])
	if utf16.IsSurrogate(r1) && i+1 < len(buf) {
		if r2 := utf16.DecodeRune(r1, rune(buf[i+1])); r2 != utf8.RuneError {
			return r2, 2
		}
	}
	return r1, 1
}
