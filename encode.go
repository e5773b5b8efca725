package otherdata

import (
	"strings"

	"github.com/rawbytedev/otherdata/internal/common"
)

// EncodeItems renders items as one ',' joined payload. It never fails.
//
//   - NamedValue: '=' escaped in name and value, rendered name=value
//   - NumericValue: shortest round-trippable decimal form
//   - StringValue: ',' escaped; '=' is left as is
//   - nil: empty field
func EncodeItems(items Items) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte(common.FieldDelim)
		}
		switch v := item.(type) {
		case NamedValue:
			b.WriteString(common.Escape(v.Name, common.PairDelim))
			b.WriteByte(common.PairDelim)
			b.WriteString(common.Escape(v.Value, common.PairDelim))
		case NumericValue:
			b.WriteString(formatFloat(v.Value))
		case StringValue:
			b.WriteString(common.Escape(v.Text, common.FieldDelim))
		}
	}
	return b.String()
}

// Encode renders items into a fresh text/csv envelope with identity
// content encoding.
func Encode(items Items) *Envelope {
	return NewEnvelope(EncodeItems(items), ContentTypeCSV)
}
