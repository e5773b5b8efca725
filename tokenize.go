package otherdata

import "github.com/rawbytedev/otherdata/internal/common"

// state of the tokenizer automaton.
type state uint8

const (
	stateNormal state = iota
	// stateEscaped consumes exactly one character literally.
	stateEscaped
)

// Tokenize splits input on every delim not preceded by the escape marker.
// Escape markers stay in the returned fields; use Unescape to drop them.
// The last field is always emitted, so empty input yields one empty field
// and a trailing delimiter yields a trailing empty field. A lone trailing
// escape marker is kept as a literal backslash.
func Tokenize(input string, delim byte) []string {
	fields := make([]string, 0, 4)
	st := stateNormal
	start := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch st {
		case stateEscaped:
			st = stateNormal
		case stateNormal:
			switch c {
			case common.EscapeMarker:
				st = stateEscaped
			case delim:
				fields = append(fields, input[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, input[start:])
}

// Unescape replaces every `\ch` in field with ch. Escape pairs for any other
// character pass through, so callers unescape exactly the delimiter they
// escaped.
func Unescape(field string, ch byte) string {
	return common.Unescape(field, ch)
}
