package otherdata

import (
	"encoding/base64"
	"fmt"

	"github.com/rawbytedev/otherdata/internal/common"
)

// Options select the optional decode behaviour of a Codec.
type Options struct {
	Numeric     bool // promote every StringValue to NumericValue on decode
	AllowBase64 bool // accept base64 content encoding on decode
}

// Codec applies Options around the package level Decode and Encode. The
// zero value behaves like Decode and Encode. A Codec holds no per-call
// state and may be shared.
type Codec struct {
	Opts Options
}

// NewCodec returns a Codec using opts.
func NewCodec(opts Options) *Codec {
	return &Codec{Opts: opts}
}

// Decode is Decode with the content encoding and numeric promotion handled
// per c.Opts.
func (c *Codec) Decode(env *Envelope) (Items, error) {
	text, err := env.check()
	if err != nil {
		return nil, err
	}
	switch env.ContentEncoding {
	case "":
	case common.EncodingBase64:
		if !c.Opts.AllowBase64 {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, env.ContentEncoding)
		}
		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		text = string(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, env.ContentEncoding)
	}
	items := decodeText(text)
	if c.Opts.Numeric {
		return PromoteNumeric(items)
	}
	return items, nil
}

// Encode always produces identity encoding.
func (c *Codec) Encode(items Items) *Envelope {
	return Encode(items)
}
