package otherdata

import (
	"strconv"
	"strings"

	"github.com/rawbytedev/otherdata/internal/common"
)

// Classify turns one raw top-level field into an Item.
//
// The field is unescaped for ',' and split again on unescaped '='. Two or
// more sub-fields give a NamedValue of the first two; anything past the
// second is dropped. A single sub-field gives a StringValue. The name (or
// the plain text) is unescaped for '=' and then for '\'; the value only
// for '='.
func Classify(raw string) Item {
	f := common.Unescape(raw, common.FieldDelim)
	subs := Tokenize(f, common.PairDelim)
	first := common.Unescape(common.Unescape(subs[0], common.PairDelim), common.EscapeMarker)
	if len(subs) >= 2 {
		return NamedValue{
			Name:  first,
			Value: common.Unescape(subs[1], common.PairDelim),
		}
	}
	return StringValue{Text: first}
}

// PromoteNumeric returns a copy of items where every StringValue is parsed
// as a float64. The first text that does not parse aborts the batch with a
// *FormatError and no items. NamedValue and NumericValue pass through.
func PromoteNumeric(items Items) (Items, error) {
	out := make(Items, len(items))
	for i, item := range items {
		s, ok := item.(StringValue)
		if !ok {
			out[i] = item
			continue
		}
		v, err := parseFloat(s.Text)
		if err != nil {
			return nil, &FormatError{Index: i, Text: s.Text, Err: err}
		}
		out[i] = NumericValue{Value: v}
	}
	return out, nil
}

// parseFloat is culture-invariant. After trimming surrounding ASCII
// whitespace it accepts [+-]digits[.digits][(e|E)[+-]digits] with at least
// one digit in the mantissa, plus NaN, Inf, +Inf and -Inf as formatFloat
// writes them. Hex floats, digit separators and other spellings of
// infinity are rejected.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "NaN", "Inf", "+Inf", "-Inf":
		return strconv.ParseFloat(s, 64)
	}
	if !isDecimal(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
