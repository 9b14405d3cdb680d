package seqwire

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/seqview"
	"github.com/rawbytedev/seqview/internal/common"
)

// Decoder parses frames produced by Encoder with the same element codec.
type Decoder[T any] struct {
	codec Codec[T]
	zr    *zstd.Decoder
}

func NewDecoder[T any](codec Codec[T]) *Decoder[T] {
	return &Decoder[T]{codec: codec}
}

// Decode parses one frame and returns its elements as a fresh list. The
// element slice is built once and adopted, never re-copied into the list.
func (d *Decoder[T]) Decode(data []byte) (*seqview.List[T], error) {
	if len(data) < headerSize+crcSize {
		return nil, ErrShortFrame
	}
	if binary.LittleEndian.Uint16(data) != MagicV1 {
		return nil, ErrBadMagic
	}
	if data[2] != VersionV1 {
		return nil, ErrBadVersion
	}
	flags := data[3]
	if binary.LittleEndian.Uint32(data[4:]) != uint32(len(data)) {
		return nil, ErrShortFrame
	}

	want := binary.LittleEndian.Uint32(data[len(data)-crcSize:])
	if crc32.ChecksumIEEE(data[2:len(data)-crcSize]) != want {
		return nil, ErrChecksum
	}

	payload := data[headerSize : len(data)-crcSize]
	if flags&FlagCompressed != 0 {
		if d.zr == nil {
			zr, err := zstd.NewReader(nil)
			if err != nil {
				return nil, err
			}
			d.zr = zr
		}
		raw, err := d.zr.DecodeAll(payload, nil)
		if err != nil {
			return nil, err
		}
		payload = raw
	}

	count, n := common.ReadVarUint(payload)
	if n == 0 {
		return nil, ErrTruncated
	}
	// every element takes at least one byte, so a count beyond the payload
	// size is corrupt; reject before sizing the slice off it
	if count > uint64(len(payload)-n) {
		return nil, ErrTruncated
	}
	cursor := n

	elems := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		v, used, err := d.codec.Read(payload[cursor:])
		if err != nil {
			return nil, err
		}
		cursor += used
		elems = append(elems, v)
	}
	return seqview.Adopt(elems), nil
}
