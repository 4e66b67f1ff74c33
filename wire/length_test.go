package wire_test

import (
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/protoglot/protoglot/lex"
	"github.com/protoglot/protoglot/wire"
	"github.com/protoglot/protoglot/wireerr"
)

func TestBytesRoundTrip(t *testing.T) {
	f := func(b []byte) bool {
		dst := wire.AppendVarint(nil, 0)[:0] // start from a fresh nil-backed slice
		out, err := wire.AppendBytes(dst, b)
		if err != nil {
			return false
		}
		got, n, err := wire.DecodeBytes(out)
		if err != nil || n != len(out) {
			return false
		}
		if len(got) != len(b) {
			return false
		}
		for i := range got {
			if got[i] != b[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	f := func(s string) bool {
		if !utf8.ValidString(s) {
			return true // quick can generate non-UTF-8 strings; only valid ones round-trip
		}
		buf := make([]byte, 4+4*len(s))
		n, err := wire.EncodeString(buf, s)
		if err != nil {
			return false
		}
		got, m, err := wire.DecodeString(buf[:n])
		return err == nil && got == s && m == n
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Error(err)
	}
}

func TestDecodeStringRejectsInvalidUtf8(t *testing.T) {
	buf := wire.AppendVarint(nil, 3)
	buf = append(buf, 0xff, 0xfe, 0xfd)
	if _, _, err := wire.DecodeString(buf); !wireerr.Is(err, wireerr.UtfDecoding) {
		t.Errorf("DecodeString(invalid utf-8) error = %v, want UtfDecoding", err)
	}
}

func TestDecodeBytesLengthMismatch(t *testing.T) {
	buf := wire.AppendVarint(nil, 10)
	buf = append(buf, 'a', 'b', 'c') // declares 10 bytes, only 3 present
	if _, _, err := wire.DecodeBytes(buf); !wireerr.Is(err, wireerr.LengthMismatch) {
		t.Errorf("DecodeBytes(truncated) error = %v, want LengthMismatch", err)
	}
}

func TestEncodeBytesBufferFull(t *testing.T) {
	if _, err := wire.EncodeBytes(make([]byte, 2), []byte("hello")); !wireerr.Is(err, wireerr.BufferFull) {
		t.Errorf("EncodeBytes undersized error = %v, want BufferFull", err)
	}
}

func TestHelloWorldLexAndRoundTrip(t *testing.T) {
	// Concrete scenario 3: "Hello_world" lexed as a string literal, then
	// round-tripped through the length-delimited string codec, comes back
	// as the same 11-byte string.
	const s = "Hello_world"
	if len(s) != 11 {
		t.Fatalf("fixture string length = %d, want 11", len(s))
	}
	tok, ok := lex.New(`"` + s + `"`).Next()
	if !ok || tok.Kind != lex.StringLiteral || tok.Text.String() != s {
		t.Fatalf("lexing %q: tok = %+v, ok=%v, want StringLiteral(%s)", s, tok, ok, s)
	}
	buf := make([]byte, 16)
	n, err := wire.EncodeString(buf, tok.Text.String())
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := wire.DecodeString(buf[:n])
	if err != nil || got != s {
		t.Errorf("round trip of %q = %q, %v", s, got, err)
	}
}
