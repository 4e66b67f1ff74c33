package wire_test

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/protoglot/protoglot/wire"
	"github.com/protoglot/protoglot/wireerr"
)

func TestUnsignedWidthRoundTrip(t *testing.T) {
	for _, width := range []int{8, 16, 32, 64} {
		width := width
		t.Run(widthName(width), func(t *testing.T) {
			switch width {
			case 8:
				checkUnsignedRoundTrip[uint8](t)
			case 16:
				checkUnsignedRoundTrip[uint16](t)
			case 32:
				checkUnsignedRoundTrip[uint32](t)
			case 64:
				checkUnsignedRoundTrip[uint64](t)
			}
		})
	}
}

func checkUnsignedRoundTrip[T interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}](t *testing.T) {
	t.Helper()
	f := func(v T) bool {
		buf := make([]byte, 10)
		n, err := wire.EncodeUnsigned(buf, v)
		if err != nil {
			return false
		}
		got, m, err := wire.DecodeUnsigned[T](buf[:n])
		return err == nil && got == v && m == n
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestSignedWidthRoundTrip(t *testing.T) {
	checkSignedRoundTrip[int8](t)
	checkSignedRoundTrip[int16](t)
	checkSignedRoundTrip[int32](t)
	checkSignedRoundTrip[int64](t)
}

func checkSignedRoundTrip[T interface {
	~int8 | ~int16 | ~int32 | ~int64
}](t *testing.T) {
	t.Helper()
	f := func(v T) bool {
		buf := make([]byte, 10)
		n, err := wire.EncodeSigned(buf, v)
		if err != nil {
			return false
		}
		got, m, err := wire.DecodeSigned[T](buf[:n])
		return err == nil && got == v && m == n
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestDecodeOverflowNarrowerWidth(t *testing.T) {
	buf := wire.AppendVarint(nil, math.MaxUint64)
	if _, _, err := wire.DecodeUnsigned[uint8](buf); !wireerr.Is(err, wireerr.DecodeOverflow) {
		t.Errorf("DecodeUnsigned[uint8](MaxUint64) error = %v, want DecodeOverflow", err)
	}
	if _, _, err := wire.DecodeUnsigned[uint16](buf); !wireerr.Is(err, wireerr.DecodeOverflow) {
		t.Errorf("DecodeUnsigned[uint16](MaxUint64) error = %v, want DecodeOverflow", err)
	}
}

func TestDecodeOverflowSignedNarrowerWidth(t *testing.T) {
	buf := make([]byte, 10)
	n, err := wire.EncodeSigned(buf, int16(math.MinInt16))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := wire.DecodeSigned[int8](buf[:n]); !wireerr.Is(err, wireerr.DecodeOverflow) {
		t.Errorf("DecodeSigned[int8](encoded MinInt16) error = %v, want DecodeOverflow", err)
	}
}

func TestBoolCodec(t *testing.T) {
	buf := make([]byte, 10)
	for _, v := range []bool{true, false} {
		n, err := wire.EncodeBool(buf, v)
		if err != nil {
			t.Fatal(err)
		}
		got, m, err := wire.DecodeBool(buf[:n])
		if err != nil || got != v || m != n {
			t.Errorf("EncodeBool/DecodeBool(%v) round trip failed: got=%v m=%d err=%v", v, got, m, err)
		}
	}
}

func TestDecodeBoolRejectsNonBinary(t *testing.T) {
	buf := wire.AppendVarint(nil, 2)
	if _, _, err := wire.DecodeBool(buf); !wireerr.Is(err, wireerr.DecodeOverflow) {
		t.Errorf("DecodeBool(2) error = %v, want DecodeOverflow", err)
	}
}

func widthName(n int) string {
	switch n {
	case 8:
		return "w8"
	case 16:
		return "w16"
	case 32:
		return "w32"
	case 64:
		return "w64"
	default:
		return "w?"
	}
}
