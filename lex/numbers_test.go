package lex_test

import (
	"math"
	"testing"

	"github.com/protoglot/protoglot/lex"
)

func lexOne(t *testing.T, src string) lex.Token {
	t.Helper()
	lx := lex.New(src)
	tok, ok := lx.Next()
	if !ok {
		t.Fatalf("lexing %q produced no token", src)
	}
	return tok
}

func TestIntegerLiteralsByRadix(t *testing.T) {
	tests := []struct {
		src  string
		want uint64
	}{
		{"0x123", 0x123},
		{"0123", 0o123},
		{"123", 123},
		{"0", 0},
	}
	for _, test := range tests {
		tok := lexOne(t, test.src)
		if tok.Kind != lex.IntegerLiteral {
			t.Errorf("%q: kind = %v, want IntegerLiteral", test.src, tok.Kind)
			continue
		}
		if tok.Int != test.want {
			t.Errorf("%q: value = %d, want %d", test.src, tok.Int, test.want)
		}
	}
}

func TestIntegerLiteralOverflowIsError(t *testing.T) {
	// One more than u64::MAX.
	tok := lexOne(t, "184467440737095516151")
	if tok.Kind != lex.Error {
		t.Fatalf("kind = %v, want Error", tok.Kind)
	}
}

func TestHexLiteralRequiresDigit(t *testing.T) {
	tok := lexOne(t, "0x")
	if tok.Kind != lex.Error {
		t.Fatalf("kind = %v, want Error", tok.Kind)
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"5E+40", 5e40},
		{".5", 0.5},
		{"1e3", 1e3},
		{"12.56e-12", 12.56e-12},
	}
	for _, test := range tests {
		tok := lexOne(t, test.src)
		if tok.Kind != lex.FloatLiteral {
			t.Errorf("%q: kind = %v, want FloatLiteral", test.src, tok.Kind)
			continue
		}
		// The reconstruction in §4.6 combines integral/fractional/exponent
		// parts arithmetically rather than parsing the whole literal in one
		// call, so allow a small relative tolerance rather than exact
		// equality (the only guarantee made is "within 2 ULP").
		if rel := math.Abs(tok.Float-test.want) / math.Abs(test.want); rel > 1e-9 {
			t.Errorf("%q: value = %v, want %v (relative error %v)", test.src, tok.Float, test.want, rel)
		}
	}
}

func TestMissingExponentDigitsIsError(t *testing.T) {
	tok := lexOne(t, "1e")
	if tok.Kind != lex.Error {
		t.Fatalf("kind = %v, want Error", tok.Kind)
	}
}

func TestTrailingDotWithNoFractionalDigitsIsZero(t *testing.T) {
	tok := lexOne(t, "5.")
	if tok.Kind != lex.FloatLiteral || tok.Float != 5.0 {
		t.Fatalf("5. lexed as %+v, want FloatLiteral(5.0)", tok)
	}
}
