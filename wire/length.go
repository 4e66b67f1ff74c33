package wire

import (
	"math"
	"unicode/utf8"

	"github.com/protoglot/protoglot/wireerr"
)

// AppendBytes appends the length-delimited encoding of b (a varint length
// followed by b's bytes) to dst. It fails with EncodeOverflow if len(b)
// exceeds the maximum positive signed 32-bit integer.
func AppendBytes(dst, b []byte) ([]byte, error) {
	if len(b) > math.MaxInt32 {
		return nil, wireerr.New("AppendBytes", wireerr.EncodeOverflow)
	}
	dst = AppendVarint(dst, uint64(len(b)))
	return append(dst, b...), nil
}

// EncodeBytes writes the length-delimited encoding of b into dst, returning
// the number of bytes written. It fails with EncodeOverflow if len(b)
// exceeds the signed 32-bit range, or BufferFull if dst cannot hold the
// varint length prefix plus the payload.
func EncodeBytes(dst, b []byte) (int, error) {
	if len(b) > math.MaxInt32 {
		return 0, wireerr.New("EncodeBytes", wireerr.EncodeOverflow)
	}
	n, err := EncodeVarint(dst, uint64(len(b)))
	if err != nil {
		return 0, err
	}
	if len(dst)-n < len(b) {
		return 0, wireerr.New("EncodeBytes", wireerr.BufferFull)
	}
	copy(dst[n:], b)
	return n + len(b), nil
}

// DecodeBytes reads a length-delimited payload from the front of src and
// returns a slice aliasing src's backing array together with the number of
// bytes consumed (length prefix plus payload). It fails with
// LengthMismatch if the declared length exceeds the bytes available.
func DecodeBytes(src []byte) ([]byte, int, error) {
	length, n, err := DecodeVarint(src)
	if err != nil {
		return nil, 0, err
	}
	if length > math.MaxInt32 {
		return nil, 0, wireerr.New("DecodeBytes", wireerr.LengthMismatch)
	}
	end := n + int(length)
	if end < n || end > len(src) {
		return nil, 0, wireerr.New("DecodeBytes", wireerr.LengthMismatch)
	}
	return src[n:end], end, nil
}

// EncodeString writes the length-delimited encoding of s into dst. It has
// the same failure modes as EncodeBytes; s is not validated as UTF-8 on
// encode (only decode validates, per §4.3).
func EncodeString(dst []byte, s string) (int, error) {
	return EncodeBytes(dst, []byte(s))
}

// DecodeString reads a length-delimited payload from the front of src and
// validates it as well-formed UTF-8, failing with UtfDecoding if it is not.
func DecodeString(src []byte) (string, int, error) {
	b, n, err := DecodeBytes(src)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(b) {
		return "", 0, wireerr.New("DecodeString", wireerr.UtfDecoding)
	}
	return string(b), n, nil
}
