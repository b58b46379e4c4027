// Package textenc recovers raw transcript bytes into Unicode text.
// Transcripts exported on Windows machines regularly arrive as
// Windows-1251, so strict UTF-8 is tried first and the legacy Cyrillic
// code page second. Decoding never fails: bytes that survive neither
// attempt go through lossy UTF-8 substitution.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw file bytes into a string, stripping a UTF-8 BOM if
// present.
func Decode(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data)
	}
	if decoded, ok := decodeWindows1251(data); ok {
		return decoded
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// decodeWindows1251 maps every byte through the Windows-1251 table,
// reporting failure when a byte has no assigned code point.
func decodeWindows1251(data []byte) (string, bool) {
	var out strings.Builder
	out.Grow(len(data) * 2)
	for _, b := range data {
		r := charmap.Windows1251.DecodeByte(b)
		if r == utf8.RuneError {
			return "", false
		}
		out.WriteRune(r)
	}
	return out.String(), true
}
