package seqwire

import (
	"encoding/binary"
	"math"

	"github.com/rawbytedev/seqview/internal/common"
)

// Codec converts single elements to and from their wire form. AppendTo
// appends v to dst; Read decodes one element from the front of src and
// reports how many bytes it consumed.
type Codec[T any] interface {
	AppendTo(dst []byte, v T) []byte
	Read(src []byte) (T, int, error)
}

// Uint64Codec encodes unsigned integers as varints.
type Uint64Codec struct{}

func (Uint64Codec) AppendTo(dst []byte, v uint64) []byte {
	return common.WriteVarUint(dst, v)
}

func (Uint64Codec) Read(src []byte) (uint64, int, error) {
	x, n := common.ReadVarUint(src)
	if n == 0 {
		return 0, 0, ErrTruncated
	}
	return x, n, nil
}

// Int64Codec encodes signed integers as zigzag varints, keeping small
// magnitudes of either sign short.
type Int64Codec struct{}

func (Int64Codec) AppendTo(dst []byte, v int64) []byte {
	return common.WriteVarUint(dst, common.ZigZag(v))
}

func (Int64Codec) Read(src []byte) (int64, int, error) {
	x, n := common.ReadVarUint(src)
	if n == 0 {
		return 0, 0, ErrTruncated
	}
	return common.UnZigZag(x), n, nil
}

// Float64Codec encodes floats as 8 fixed little-endian bytes.
type Float64Codec struct{}

func (Float64Codec) AppendTo(dst []byte, v float64) []byte {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
	return append(dst, scratch[:]...)
}

func (Float64Codec) Read(src []byte) (float64, int, error) {
	if len(src) < 8 {
		return 0, 0, ErrTruncated
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(src)), 8, nil
}

// StringCodec encodes strings as varint length + bytes.
type StringCodec struct{}

func (StringCodec) AppendTo(dst []byte, v string) []byte {
	dst = common.WriteVarUint(dst, uint64(len(v)))
	return append(dst, v...)
}

func (StringCodec) Read(src []byte) (string, int, error) {
	l, n := common.ReadVarUint(src)
	if n == 0 || uint64(len(src)-n) < l {
		return "", 0, ErrTruncated
	}
	return string(src[n : n+int(l)]), n + int(l), nil
}

// BytesCodec encodes byte slices as varint length + bytes. Read returns a
// subslice aliasing src, not a copy; callers that outlive the frame buffer
// must copy.
type BytesCodec struct{}

func (BytesCodec) AppendTo(dst []byte, v []byte) []byte {
	dst = common.WriteVarUint(dst, uint64(len(v)))
	return append(dst, v...)
}

func (BytesCodec) Read(src []byte) ([]byte, int, error) {
	l, n := common.ReadVarUint(src)
	if n == 0 || uint64(len(src)-n) < l {
		return nil, 0, ErrTruncated
	}
	return src[n : n+int(l)], n + int(l), nil
}
