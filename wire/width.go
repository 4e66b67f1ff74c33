package wire

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/protoglot/protoglot/wireerr"
)

// EncodeUnsigned varint-encodes an unsigned integer of any width, widening
// it to uint64 without modification before delegating to EncodeVarint.
func EncodeUnsigned[T constraints.Unsigned](dst []byte, v T) (int, error) {
	return EncodeVarint(dst, uint64(v))
}

// DecodeUnsigned decodes a varint into an unsigned integer of width T,
// failing with DecodeOverflow if the decoded value does not fit T.
func DecodeUnsigned[T constraints.Unsigned](src []byte) (T, int, error) {
	x, n, err := DecodeVarint(src)
	if err != nil {
		return 0, 0, err
	}
	var maxT T = ^T(0)
	if x > uint64(maxT) {
		return 0, 0, wireerr.New("DecodeUnsigned", wireerr.DecodeOverflow)
	}
	return T(x), n, nil
}

// EncodeSigned ZigZag-encodes a signed integer of any width before
// delegating to EncodeVarint, matching the sint32/sint64 wire
// representation. The plain (non-ZigZag) int32/int64 form is not produced.
func EncodeSigned[T constraints.Signed](dst []byte, v T) (int, error) {
	return EncodeVarint(dst, zigZagEncodeGeneric(int64(v)))
}

// DecodeSigned decodes a ZigZag-encoded varint into a signed integer of
// width T, failing with DecodeOverflow if the reconstructed value does not
// fit T.
func DecodeSigned[T constraints.Signed](src []byte) (T, int, error) {
	u, n, err := DecodeVarint(src)
	if err != nil {
		return 0, 0, err
	}
	v := ZigZagDecode64(u)
	minT, maxT := signedRange[T]()
	if v < minT || v > maxT {
		return 0, 0, wireerr.New("DecodeSigned", wireerr.DecodeOverflow)
	}
	return T(v), n, nil
}

func zigZagEncodeGeneric(n int64) uint64 {
	return ZigZagEncode64(n)
}

// signedRange returns the [min,max] range representable by signed width T,
// computed from T's size rather than hard-coded per width.
func signedRange[T constraints.Signed]() (min, max int64) {
	bits := int(unsafe.Sizeof(T(0))) * 8
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	max = int64(1)<<(uint(bits)-1) - 1
	min = -max - 1
	return
}

// EncodeBool encodes a boolean as the varint 0 or 1.
func EncodeBool(dst []byte, v bool) (int, error) {
	if v {
		return EncodeVarint(dst, 1)
	}
	return EncodeVarint(dst, 0)
}

// DecodeBool decodes a boolean varint, rejecting any value other than 0 or
// 1 with DecodeOverflow.
func DecodeBool(src []byte) (bool, int, error) {
	x, n, err := DecodeVarint(src)
	if err != nil {
		return false, 0, err
	}
	switch x {
	case 0:
		return false, n, nil
	case 1:
		return true, n, nil
	default:
		return false, 0, wireerr.New("DecodeBool", wireerr.DecodeOverflow)
	}
}
