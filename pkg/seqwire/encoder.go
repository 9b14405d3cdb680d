// Package seqwire frames seqview sequences for storage or transport.
//
// Frame layout, all integers little-endian:
//
//	magic(2) | version(1) | flags(1) | total length(4) |
//	payload: varint count + elements | CRC32-IEEE(4)
//
// The CRC covers everything after the magic up to the CRC itself. With
// FlagCompressed set the payload section is zstd-compressed as a whole.
package seqwire

import (
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/seqview"
	"github.com/rawbytedev/seqview/internal/common"
)

const (
	MagicV1        uint16 = 0x5A43 // "CZ" on the wire
	VersionV1      byte   = 1
	FlagCompressed byte   = 0x01

	headerSize = 8 // magic + version + flags + length
	crcSize    = 4
)

var (
	ErrShortFrame = errors.New("frame too short")
	ErrBadMagic   = errors.New("bad magic")
	ErrBadVersion = errors.New("unsupported version")
	ErrChecksum   = errors.New("crc mismatch")
	ErrTruncated  = errors.New("truncated element payload")
)

// Options controls frame production.
type Options struct {
	// Compress runs the payload through zstd. Worth it for large element
	// payloads, pure overhead for a handful of varints.
	Compress bool
}

// Encoder frames sequences using a fixed element codec. Buffers are reused
// across Encode calls; an Encoder is not safe for concurrent use.
type Encoder[T any] struct {
	Opts  Options
	codec Codec[T]
	buf   []byte
	body  []byte
	zw    *zstd.Encoder
}

func NewEncoder[T any](codec Codec[T], opts Options) *Encoder[T] {
	return &Encoder[T]{Opts: opts, codec: codec}
}

// Encode frames seq. Both lists and views encode, since framing only needs
// indexed reads; a stale view surfaces ErrStaleView here. The returned
// slice is reused by the next Encode call.
func (e *Encoder[T]) Encode(seq seqview.Sequence[T]) ([]byte, error) {
	e.reset()

	n := seq.Len()
	e.body = common.WriteVarUintTo(e.body, uint64(n))
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			return nil, err
		}
		e.body = e.codec.AppendTo(e.body, v)
	}

	payload := e.body
	var flags byte
	if e.Opts.Compress {
		if e.zw == nil {
			zw, err := zstd.NewWriter(nil)
			if err != nil {
				return nil, err
			}
			e.zw = zw
		}
		payload = e.zw.EncodeAll(e.body, nil)
		flags |= FlagCompressed
	}

	e.buf = binary.LittleEndian.AppendUint16(e.buf, MagicV1)
	e.buf = append(e.buf, VersionV1, flags)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(headerSize+len(payload)+crcSize))
	e.buf = append(e.buf, payload...)

	crc := crc32.ChecksumIEEE(e.buf[2:])
	e.buf = binary.LittleEndian.AppendUint32(e.buf, crc)
	return e.buf, nil
}

func (e *Encoder[T]) reset() {
	if e.buf == nil {
		e.buf = make([]byte, 0, 128)
		e.body = make([]byte, 0, 128)
	} else {
		e.buf = e.buf[:0]
		e.body = e.body[:0]
	}
}
