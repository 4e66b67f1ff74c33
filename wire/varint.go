// Package wire implements the Protocol Buffers binary wire format: varints,
// fixed-width little-endian scalars, length-delimited payloads, and field
// tags.
//
// Every function in this package returns a *wireerr.Error on failure so
// callers can branch on wireerr.Is(err, wireerr.SomeKind). None of the
// failure modes are retried internally; partial output on an encode
// failure is unspecified and must be discarded by the caller.
package wire

import "github.com/protoglot/protoglot/wireerr"

// maxVarintLen is the longest a base-128 varint encoding of a uint64 can be:
// ceil(64/7) = 10 groups.
const maxVarintLen = 10

// AppendVarint appends the varint encoding of v to dst and returns the
// extended slice. AppendVarint never fails: dst grows as needed.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// EncodeVarint writes the varint encoding of v into dst starting at offset
// 0 and returns the number of bytes written. It fails with BufferFull if
// dst is too small to hold the encoding; the contents of dst are then
// unspecified.
func EncodeVarint(dst []byte, v uint64) (int, error) {
	n := 0
	for v >= 0x80 {
		if n >= len(dst) {
			return 0, wireerr.New("EncodeVarint", wireerr.BufferFull)
		}
		dst[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	if n >= len(dst) {
		return 0, wireerr.New("EncodeVarint", wireerr.BufferFull)
	}
	dst[n] = byte(v)
	return n + 1, nil
}

// SizeVarint returns the number of bytes the varint encoding of v occupies,
// a value between 1 and 10 inclusive.
func SizeVarint(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// DecodeVarint reads a varint-encoded uint64 from the front of src and
// returns the decoded value together with the number of bytes consumed.
//
// It fails with Eof if src is empty, with VarintOverflow if the tenth byte
// is read and still carries the continuation bit, and — per the strict
// policy chosen in DESIGN.md for the short-varint open question — with Eof
// if src runs out before a terminating byte (continuation bit clear) is
// seen.
func DecodeVarint(src []byte) (uint64, int, error) {
	if len(src) == 0 {
		return 0, 0, wireerr.New("DecodeVarint", wireerr.Eof)
	}
	var x uint64
	for i := 0; i < maxVarintLen; i++ {
		if i >= len(src) {
			return 0, 0, wireerr.New("DecodeVarint", wireerr.Eof)
		}
		b := src[i]
		x |= uint64(b&0x7f) << (7 * uint(i))
		if b < 0x80 {
			return x, i + 1, nil
		}
	}
	return 0, 0, wireerr.New("DecodeVarint", wireerr.VarintOverflow)
}
