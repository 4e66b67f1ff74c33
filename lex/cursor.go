package lex

import "unicode/utf8"

// cursor is a read cursor over a UTF-8 source string. It exposes peek,
// peek2 (the character after the next), and next, plus an accumulated
// consumed-byte index. Grounded on internal/encoding/text/decode.go's
// pattern of re-slicing a []byte as it is consumed, generalized here to
// rune-at-a-time iteration over a string. It is cheap to copy by value
// (one string header and one int), which is the mechanism the lexer uses
// for peek2 instead of cloning any heavier iterator state.
type cursor struct {
	src string
	pos int // byte offset of the next unconsumed rune
}

func newCursor(src string) cursor {
	return cursor{src: src}
}

// peek returns the next rune without consuming it.
func (c cursor) peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r, true
}

// peek2 returns the rune after the next one, without consuming either.
func (c cursor) peek2() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	_, n := utf8.DecodeRuneInString(c.src[c.pos:])
	rest := c.pos + n
	if rest >= len(c.src) {
		return 0, false
	}
	r2, _ := utf8.DecodeRuneInString(c.src[rest:])
	return r2, true
}

// next consumes and returns the next rune.
func (c *cursor) next() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += n
	return r, true
}

// index returns the accumulated consumed-byte index.
func (c cursor) index() int { return c.pos }
