// internal/decode/decode.go
package decode

import (
	"strings"
	"unicode/utf8"
)

// Text converts one raw program line to a string.
// Malformed UTF-8 byte sequences are dropped. Never fails; no IO.
func Text(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	return strings.ToValidUTF8(string(raw), "")
}

// Strict decodes raw only if it is entirely valid UTF-8.
// ok is false when any byte sequence is malformed.
func Strict(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// FirstWord returns the first whitespace-delimited token of s.
// ok is false when s holds no token at all.
func FirstWord(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
