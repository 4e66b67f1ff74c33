package lex

import (
	"strconv"
	"strings"
)

// scanString scans a string literal opened by a ' or " quote. If the body
// contains no escape sequence, the token's Text borrows a substring of the
// source; the first escape sequence encountered forces materializing an
// owned string for the remainder, per §4.6 and §9's borrowed-vs-owned
// design note.
func (lx *Lexer) scanString(start, line, column, lineStart int) Token {
	quote, _ := lx.advance() // consume opening quote

	bodyStart := lx.cur.index()
	var b strings.Builder
	escaped := false

	for {
		r, ok := lx.cur.peek()
		if !ok {
			return lx.errorToken(start, line, column, lineStart, "Unterminated string literal")
		}
		if r == '\n' || r == 0 {
			return lx.errorToken(start, line, column, lineStart, "Unterminated string literal")
		}
		if r == quote {
			lx.advance()
			end := lx.cur.index()
			tok := Token{Kind: StringLiteral, Span: Span{start, end}, Line: line, Column: column, LineStart: lineStart}
			if escaped {
				tok.Text = ownedText(b.String())
			} else {
				// end-1 excludes the closing quote, bodyStart excludes the opening one.
				tok.Text = borrowedText(lx.cur.src[bodyStart : end-1])
			}
			return tok
		}
		if r == '\\' {
			if !escaped {
				// First escape: materialize everything captured so far.
				b.WriteString(lx.cur.src[bodyStart:lx.cur.index()])
				escaped = true
			}
			decoded, errMsg, ok := lx.scanEscape()
			if !ok {
				return lx.errorToken(start, line, column, lineStart, errMsg)
			}
			b.WriteString(decoded)
			continue
		}
		lx.advance()
		if escaped {
			b.WriteRune(r)
		}
	}
}

// scanEscape consumes a backslash escape sequence (the leading backslash
// must still be unconsumed on entry) and returns its decoded value.
func (lx *Lexer) scanEscape() (decoded, errMsg string, ok bool) {
	lx.advance() // '\\'
	r, has := lx.cur.peek()
	if !has {
		return "", "Unterminated string literal", false
	}
	switch r {
	case 'a':
		lx.advance()
		return "\a", "", true
	case 'b':
		lx.advance()
		return "\b", "", true
	case 'f':
		lx.advance()
		return "\f", "", true
	case 'n':
		lx.advance()
		return "\n", "", true
	case 'r':
		lx.advance()
		return "\r", "", true
	case 't':
		lx.advance()
		return "\t", "", true
	case 'v':
		lx.advance()
		return "\v", "", true
	case '\\', '\'', '"', '?':
		lx.advance()
		return string(r), "", true
	case 'x', 'X':
		lx.advance()
		digits := lx.takeWhile(isHexDigit, 2)
		if digits == "" {
			return "", "invalid hex escape code", false
		}
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return "", "invalid hex escape code", false
		}
		return string([]byte{byte(v)}), "", true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		digits := lx.takeWhile(isOctalDigit, 3)
		v, err := strconv.ParseUint(digits, 8, 8)
		if err != nil {
			return "", "invalid octal escape code", false
		}
		return string([]byte{byte(v)}), "", true
	case 'u':
		lx.advance()
		digits := lx.takeExactly(isHexDigit, 4)
		if digits == "" {
			return "", "invalid unicode escape code \\u: expected 4 hex digits", false
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return "", "invalid unicode escape code \\u", false
		}
		return string(rune(v)), "", true
	case 'U':
		lx.advance()
		digits := lx.takeExactly(isHexDigit, 8)
		if digits == "" {
			return "", "invalid unicode escape code \\U: expected 8 hex digits", false
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || v > 0x10FFFF {
			return "", "invalid unicode escape code \\U", false
		}
		return string(rune(v)), "", true
	default:
		return "", "invalid escape sequence \\" + string(r), false
	}
}

// takeWhile consumes up to max runes satisfying pred and returns them.
func (lx *Lexer) takeWhile(pred func(rune) bool, max int) string {
	start := lx.cur.index()
	for i := 0; i < max; i++ {
		r, ok := lx.cur.peek()
		if !ok || !pred(r) {
			break
		}
		lx.advance()
	}
	return lx.cur.src[start:lx.cur.index()]
}

// takeExactly consumes exactly n runes satisfying pred, or consumes none
// and returns "" if fewer than n are available/matching.
func (lx *Lexer) takeExactly(pred func(rune) bool, n int) string {
	save := lx.cur
	saveLine, saveCol, saveLineStart := lx.line, lx.column, lx.lineStart
	s := lx.takeWhile(pred, n)
	if len(s) != n {
		lx.cur = save
		lx.line, lx.column, lx.lineStart = saveLine, saveCol, saveLineStart
		return ""
	}
	return s
}
