package lex

import (
	"strconv"
	"strings"
)

// RenderTokenContext renders tok in the context of its source line: the
// offending line, prefixed with its line number, followed by a caret
// underline spanning the token (§6: "A helper renders a token in the
// context of its source line with a caret underline").
func RenderTokenContext(src string, tok Token) string {
	lineEnd := strings.IndexByte(src[tok.LineStart:], '\n')
	var line string
	if lineEnd < 0 {
		line = src[tok.LineStart:]
	} else {
		line = src[tok.LineStart : tok.LineStart+lineEnd]
	}

	col := tok.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	width := tok.Span.Len()
	if width < 1 {
		width = 1
	}
	if col+width > len(line) {
		width = len(line) - col
		if width < 1 {
			width = 1
		}
	}

	var b strings.Builder
	b.WriteString("line ")
	b.WriteString(strconv.Itoa(tok.Line))
	b.WriteString(", column ")
	b.WriteString(strconv.Itoa(tok.Column))
	b.WriteString(":\n")
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", col))
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}
