package common

import "strings"

// Wire constants shared by the codec and the frame format.
const (
	FieldDelim   byte = ','
	PairDelim    byte = '='
	EscapeMarker byte = '\\'

	ContentTypeCSV = "text/csv"
	EncodingBase64 = "base64"
)

// Unescape replaces every escape marker followed by ch with ch alone.
// Other escape pairs are left untouched.
func Unescape(s string, ch byte) string {
	if strings.IndexByte(s, EscapeMarker) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == EscapeMarker && i+1 < len(s) && s[i+1] == ch {
			b.WriteByte(ch)
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Escape prefixes every occurrence of ch in s with the escape marker.
func Escape(s string, ch byte) string {
	n := strings.Count(s, string(ch))
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + n)
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			b.WriteByte(EscapeMarker)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
