package otherdata

import (
	"math"
	"strconv"
)

// Item is one field of a decoded payload. The set of implementations is
// closed: StringValue, NumericValue and NamedValue.
type Item interface {
	isItem()
}

// StringValue is an unescaped field with no internal structure.
type StringValue struct {
	Text string
}

// NumericValue is a scalar measurement.
type NumericValue struct {
	Value float64
}

// NamedValue is a field recognized as a name=value pair.
type NamedValue struct {
	Name  string
	Value string
}

func (StringValue) isItem()  {}
func (NumericValue) isItem() {}
func (NamedValue) isItem()   {}

func (s StringValue) String() string  { return s.Text }
func (n NumericValue) String() string { return formatFloat(n.Value) }
func (n NamedValue) String() string   { return n.Name + "=" + n.Value }

// Items is an ordered item sequence. Duplicates are kept.
type Items []Item

// Strings returns the unescaped text of every item, nil items as "".
func (it Items) Strings() []string {
	out := make([]string, len(it))
	for i, item := range it {
		switch v := item.(type) {
		case StringValue:
			out[i] = v.String()
		case NumericValue:
			out[i] = v.String()
		case NamedValue:
			out[i] = v.String()
		}
	}
	return out
}

// Magnitudes outside [minPlainFloat, maxPlainFloat) are written with an
// exponent; everything else is plain decimal.
const (
	minPlainFloat = 1e-5
	maxPlainFloat = 1e15
)

// formatFloat renders the shortest representation that parses back to v.
func formatFloat(v float64) string {
	if a := math.Abs(v); a == 0 || (a >= minPlainFloat && a < maxPlainFloat) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
