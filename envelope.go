package otherdata

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/otherdata/internal/common"
)

// ContentTypeCSV is the only content type the codec operates on.
const ContentTypeCSV = common.ContentTypeCSV

var (
	ErrContentTypeMismatch = errors.New("content type is not text/csv")
	ErrNullPayload         = errors.New("payload is absent")
	ErrInvalidFormat       = errors.New("invalid numeric format")
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
)

// FormatError reports the item that failed numeric promotion.
type FormatError struct {
	Index int
	Text  string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("item %d %q: %v", e.Index, e.Text, ErrInvalidFormat)
}

// Unwrap exposes both ErrInvalidFormat and the parse error.
func (e *FormatError) Unwrap() []error {
	return []error{ErrInvalidFormat, e.Err}
}

// Envelope pairs a raw payload with its content type and encoding, the way
// a record field stores it. A nil RawText is an absent payload.
type Envelope struct {
	RawText         *string
	ContentType     string
	ContentEncoding string
}

// NewEnvelope returns an envelope holding text with identity encoding.
func NewEnvelope(text, contentType string) *Envelope {
	return &Envelope{RawText: &text, ContentType: contentType}
}

// Text returns the payload and whether it is present.
func (e *Envelope) Text() (string, bool) {
	if e == nil || e.RawText == nil {
		return "", false
	}
	return *e.RawText, true
}

// check validates the content type before anything else, then presence.
func (e *Envelope) check() (string, error) {
	if e == nil {
		return "", ErrNullPayload
	}
	if e.ContentType != ContentTypeCSV {
		return "", fmt.Errorf("%w: got %q", ErrContentTypeMismatch, e.ContentType)
	}
	text, ok := e.Text()
	if !ok {
		return "", ErrNullPayload
	}
	return text, nil
}

// Decode splits the envelope payload into classified items in field order.
// The content encoding is not interpreted; see Codec for base64 payloads.
func Decode(env *Envelope) (Items, error) {
	text, err := env.check()
	if err != nil {
		return nil, err
	}
	return decodeText(text), nil
}

// DecodeNumeric decodes env and promotes every StringValue to a
// NumericValue, failing the whole batch on the first bad number.
func DecodeNumeric(env *Envelope) (Items, error) {
	items, err := Decode(env)
	if err != nil {
		return nil, err
	}
	return PromoteNumeric(items)
}

func decodeText(text string) Items {
	fields := Tokenize(text, common.FieldDelim)
	items := make(Items, len(fields))
	for i, f := range fields {
		items[i] = Classify(f)
	}
	return items
}
