package frame

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Reader decodes frames. It is safe for concurrent use.
type Reader struct {
	dec *zstd.Decoder
}

func NewReader() (*Reader, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &Reader{dec: dec}, nil
}

// Close releases the decompressor.
func (r *Reader) Close() {
	r.dec.Close()
}

// Decode parses a frame back into the envelope it was built from.
func (r *Reader) Decode(data []byte) (*Envelope, error) {
	if len(data) < headerSize+4+crcSize {
		return nil, ErrShortFrame
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, ErrBadMagic
	}
	if data[2] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, data[2])
	}
	if int(binary.LittleEndian.Uint32(data[3:])) != len(data) {
		return nil, ErrLengthMismatch
	}
	end := len(data) - crcSize
	if crc32.ChecksumIEEE(data[2:end]) != binary.LittleEndian.Uint32(data[end:]) {
		return nil, ErrChecksum
	}

	rdr := bytes.NewReader(data[headerSize:end])
	flags := data[headerSize-1]
	ctype, err := readString(rdr)
	if err != nil {
		return nil, err
	}
	cenc, err := readString(rdr)
	if err != nil {
		return nil, err
	}
	env := &Envelope{ContentType: ctype, ContentEncoding: cenc}
	if flags&FlagNullPayload != 0 {
		return env, nil
	}

	payload := data[end-rdr.Len() : end]
	if flags&FlagZstd != 0 {
		payload, err = r.dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress payload: %w", err)
		}
	}
	text := string(payload)
	env.RawText = &text
	return env, nil
}

func readString(rdr *bytes.Reader) (string, error) {
	var n uint16
	if err := binary.Read(rdr, binary.LittleEndian, &n); err != nil {
		return "", ErrShortFrame
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rdr, b); err != nil {
		return "", ErrShortFrame
	}
	return string(b), nil
}
