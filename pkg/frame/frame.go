// Package frame stores an other-data envelope as a self-checking binary
// frame, optionally zstd compressed.
//
// Layout (little-endian):
//
//	magic "OD" | version(1) | length(4) | flags(1)
//	| typeLen(2) type | encLen(2) encoding | payload | crc32(4)
//
// length counts the whole frame including magic and CRC. The CRC covers
// everything after the magic up to the end of the payload.
package frame

import (
	"errors"

	"github.com/rawbytedev/otherdata"
)

const (
	Version byte = 1

	FlagZstd        byte = 0x01 // payload is zstd compressed
	FlagNullPayload byte = 0x02 // envelope carried no payload

	headerSize = 2 + 1 + 4 + 1
	crcSize    = 4
)

var magic = [2]byte{'O', 'D'}

var (
	ErrShortFrame     = errors.New("frame too short")
	ErrBadMagic       = errors.New("not an other-data frame")
	ErrVersion        = errors.New("unsupported frame version")
	ErrLengthMismatch = errors.New("frame length mismatch")
	ErrChecksum       = errors.New("crc mismatch")
	ErrFieldTooLong   = errors.New("header field exceeds 65535 bytes")
)

// Options control how a Writer builds frames.
type Options struct {
	Compress        bool
	MinCompressSize int // payloads shorter than this stay raw
}

// Envelope is the envelope type frames carry.
type Envelope = otherdata.Envelope
