package wire

import (
	"math"

	"github.com/protoglot/protoglot/wireerr"
)

// EncodeFixed32 writes x as 4 little-endian bytes into dst, failing with
// BufferFull if fewer than 4 bytes are available.
func EncodeFixed32(dst []byte, x uint32) (int, error) {
	if len(dst) < 4 {
		return 0, wireerr.New("EncodeFixed32", wireerr.BufferFull)
	}
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	return 4, nil
}

// DecodeFixed32 reads 4 little-endian bytes from the front of src, failing
// with Eof if fewer than 4 bytes remain.
func DecodeFixed32(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, wireerr.New("DecodeFixed32", wireerr.Eof)
	}
	x := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	return x, 4, nil
}

// EncodeFixed64 writes x as 8 little-endian bytes into dst, failing with
// BufferFull if fewer than 8 bytes are available.
func EncodeFixed64(dst []byte, x uint64) (int, error) {
	if len(dst) < 8 {
		return 0, wireerr.New("EncodeFixed64", wireerr.BufferFull)
	}
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
	return 8, nil
}

// DecodeFixed64 reads 8 little-endian bytes from the front of src, failing
// with Eof if fewer than 8 bytes remain.
func DecodeFixed64(src []byte) (uint64, int, error) {
	if len(src) < 8 {
		return 0, 0, wireerr.New("DecodeFixed64", wireerr.Eof)
	}
	x := uint64(src[0]) | uint64(src[1])<<8 | uint64(src[2])<<16 | uint64(src[3])<<24 |
		uint64(src[4])<<32 | uint64(src[5])<<40 | uint64(src[6])<<48 | uint64(src[7])<<56
	return x, 8, nil
}

// EncodeFloat32 writes the IEEE-754 bit pattern of f as 4 little-endian
// bytes.
func EncodeFloat32(dst []byte, f float32) (int, error) {
	return EncodeFixed32(dst, math.Float32bits(f))
}

// DecodeFloat32 is the inverse of EncodeFloat32.
func DecodeFloat32(src []byte) (float32, int, error) {
	x, n, err := DecodeFixed32(src)
	if err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(x), n, nil
}

// EncodeFloat64 writes the IEEE-754 bit pattern of f as 8 little-endian
// bytes.
func EncodeFloat64(dst []byte, f float64) (int, error) {
	return EncodeFixed64(dst, math.Float64bits(f))
}

// DecodeFloat64 is the inverse of EncodeFloat64.
func DecodeFloat64(src []byte) (float64, int, error) {
	x, n, err := DecodeFixed64(src)
	if err != nil {
		return 0, 0, err
	}
	return math.Float64frombits(x), n, nil
}
