// Package parse implements the skeletal parser shell that sits atop lex:
// recognizing the leading `syntax = "proto3";` declaration of a .proto file.
// No further grammar is parsed; everything past the syntax declaration is
// explicitly out of scope.
package parse

import (
	"fmt"

	"github.com/protoglot/protoglot/lex"
)

// SyntaxError names the token that broke the expected
// `syntax = "proto3";` sequence and where it was found.
type SyntaxError struct {
	Got      lex.Kind
	Line     int
	Column   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax declaration: expected %s, got %s at line %d, column %d", e.Expected, e.Got, e.Line, e.Column)
}

// ParseSyntax consumes exactly the four tokens
// `Syntax Equals StringLiteral Semicolon` from lx with one-token lookahead,
// mirroring the consumeChar/tryConsumeChar idiom of a byte-oriented text
// decoder generalized to a token stream. It validates the string literal's
// decoded value is exactly "proto3" and returns it. Any deviation — a wrong
// keyword, a missing token, a non-proto3 edition, end of input — produces a
// *SyntaxError.
func ParseSyntax(lx *lex.Lexer) (string, error) {
	if _, err := expect(lx, lex.KwSyntax, "'syntax'"); err != nil {
		return "", err
	}

	if _, err := expect(lx, lex.Equals, "'='"); err != nil {
		return "", err
	}

	tok, err := expect(lx, lex.StringLiteral, "a string literal")
	if err != nil {
		return "", err
	}
	edition := tok.Text.String()
	if edition != "proto3" {
		return "", &SyntaxError{
			Got:      lex.StringLiteral,
			Line:     tok.Line,
			Column:   tok.Column,
			Expected: `"proto3"`,
		}
	}

	if _, err := expect(lx, lex.Semicolon, "';'"); err != nil {
		return "", err
	}

	return edition, nil
}

// expect consumes the next token from lx and requires it to have kind want,
// returning a *SyntaxError (naming the offending token) on any mismatch,
// including end of input.
func expect(lx *lex.Lexer, want lex.Kind, label string) (lex.Token, error) {
	tok, ok := lx.Next()
	if !ok {
		return lex.Token{}, &SyntaxError{
			Got:      lex.EOF,
			Expected: label,
		}
	}
	if tok.Kind != want {
		return lex.Token{}, &SyntaxError{
			Got:      tok.Kind,
			Line:     tok.Line,
			Column:   tok.Column,
			Expected: label,
		}
	}
	return tok, nil
}
