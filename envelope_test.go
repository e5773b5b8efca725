package otherdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyText(t *testing.T) {
	items, err := Decode(NewEnvelope("", "text/csv"))
	require.NoError(t, err)
	require.Equal(t, Items{StringValue{Text: ""}}, items)
}

func TestDecodeTrailingDelimiter(t *testing.T) {
	items, err := Decode(NewEnvelope("a,", "text/csv"))
	require.NoError(t, err)
	require.Equal(t, Items{StringValue{Text: "a"}, StringValue{Text: ""}}, items)
}

func TestDecodeKeepsOrderAndDuplicates(t *testing.T) {
	items, err := Decode(NewEnvelope("1,k=v,1,k=v", "text/csv"))
	require.NoError(t, err)
	require.Equal(t, Items{
		StringValue{Text: "1"},
		NamedValue{Name: "k", Value: "v"},
		StringValue{Text: "1"},
		NamedValue{Name: "k", Value: "v"},
	}, items)
}

func TestDecodeTrailingEscape(t *testing.T) {
	items, err := Decode(NewEnvelope(`a,b\`, "text/csv"))
	require.NoError(t, err)
	require.Equal(t, Items{StringValue{Text: "a"}, StringValue{Text: `b\`}}, items)
}

func TestDecodeContentTypeMismatch(t *testing.T) {
	_, err := Decode(NewEnvelope("a,b", "text/plain"))
	require.ErrorIs(t, err, ErrContentTypeMismatch)

	// type is checked before presence
	_, err = Decode(&Envelope{ContentType: "text/plain"})
	require.ErrorIs(t, err, ErrContentTypeMismatch)

	_, err = Decode(NewEnvelope("a", "TEXT/CSV"))
	require.ErrorIs(t, err, ErrContentTypeMismatch)
}

func TestDecodeNullPayload(t *testing.T) {
	_, err := Decode(&Envelope{ContentType: "text/csv"})
	require.ErrorIs(t, err, ErrNullPayload)

	_, err = Decode(nil)
	require.ErrorIs(t, err, ErrNullPayload)
}

func TestDecodeNumeric(t *testing.T) {
	items, err := DecodeNumeric(NewEnvelope("1,2.5,unit=kg", "text/csv"))
	require.NoError(t, err)
	require.Equal(t, Items{
		NumericValue{Value: 1},
		NumericValue{Value: 2.5},
		NamedValue{Name: "unit", Value: "kg"},
	}, items)

	items, err = DecodeNumeric(NewEnvelope("1,abc", "text/csv"))
	require.ErrorIs(t, err, ErrInvalidFormat)
	require.Nil(t, items)
}

func TestEnvelopeText(t *testing.T) {
	var env *Envelope
	_, ok := env.Text()
	require.False(t, ok)

	text, ok := NewEnvelope("x", "text/csv").Text()
	require.True(t, ok)
	require.Equal(t, "x", text)
}

func FuzzDecode(f *testing.F) {
	f.Add("")
	f.Add(`1,a\,b,x\=y=2`)
	f.Add(`\`)
	f.Fuzz(func(t *testing.T, in string) {
		items, err := Decode(NewEnvelope(in, ContentTypeCSV))
		require.NoError(t, err)
		require.Len(t, items, len(Tokenize(in, ',')))
		_, err = PromoteNumeric(items)
		if err != nil {
			require.ErrorIs(t, err, ErrInvalidFormat)
		}
	})
}
