package frame

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/otherdata"
)

// Writer encodes envelopes into frames. It is safe for concurrent use.
type Writer struct {
	Opts Options
	enc  *zstd.Encoder
}

func NewWriter(opts Options) (*Writer, error) {
	w := &Writer{Opts: opts}
	if opts.Compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		w.enc = enc
	}
	return w, nil
}

// Close releases the compressor.
func (w *Writer) Close() error {
	if w.enc != nil {
		return w.enc.Close()
	}
	return nil
}

// Encode serializes env into a frame.
func (w *Writer) Encode(env *Envelope) ([]byte, error) {
	if env == nil {
		return nil, otherdata.ErrNullPayload
	}
	if len(env.ContentType) > 0xFFFF || len(env.ContentEncoding) > 0xFFFF {
		return nil, ErrFieldTooLong
	}
	var flags byte
	text, ok := env.Text()
	payload := []byte(text)
	if !ok {
		flags |= FlagNullPayload
	} else if w.enc != nil && len(payload) >= w.Opts.MinCompressSize {
		payload = w.enc.EncodeAll(payload, nil)
		flags |= FlagZstd
	}

	buf := &bytes.Buffer{}
	buf.Grow(headerSize + 4 + len(env.ContentType) + len(env.ContentEncoding) + len(payload) + crcSize)
	buf.Write(magic[:])
	buf.WriteByte(Version)
	// length placeholder
	binary.Write(buf, binary.LittleEndian, uint32(0))
	buf.WriteByte(flags)
	writeString(buf, env.ContentType)
	writeString(buf, env.ContentEncoding)
	buf.Write(payload)

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[3:], uint32(len(out)+crcSize))
	crc := crc32.ChecksumIEEE(out[2:])
	out = binary.LittleEndian.AppendUint32(out, crc)
	return out, nil
}

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)
}
