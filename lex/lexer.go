package lex

import "unicode"

// Lexer produces a lazy, finite sequence of Tokens over a UTF-8 source
// string. It is restartable only by constructing a new Lexer: there is no
// rewind. The lexer is single-threaded and allocation-minimal; independent
// Lexers over independent sources may run concurrently with no shared
// state.
type Lexer struct {
	cur cursor

	line      int
	column    int
	lineStart int

	seenError bool
}

// New constructs a Lexer over src. src must outlive every Token it
// produces that borrows from it (Text.Owned() == false).
func New(src string) *Lexer {
	return &Lexer{
		cur:       newCursor(src),
		line:      1,
		column:    1,
		lineStart: 0,
	}
}

// SeenError reports whether at least one Error token has been emitted so
// far. The stream does not stop on error; consumers decide whether to
// abort or continue.
func (lx *Lexer) SeenError() bool { return lx.seenError }

const (
	whitespaceFF = '\x0C'
	whitespaceVT = '\x0B'
)

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\r', '\t', whitespaceFF, whitespaceVT:
		return true
	default:
		return false
	}
}

// advance consumes and returns the next rune, updating line/column/lineStart.
func (lx *Lexer) advance() (rune, bool) {
	r, ok := lx.cur.next()
	if !ok {
		return 0, false
	}
	switch r {
	case '\n':
		lx.line++
		lx.column = 1
		lx.lineStart = lx.cur.index()
	case '\t':
		lx.column += 4
	default:
		lx.column++
	}
	return r, true
}

// skipTrivia consumes whitespace and comments until a non-trivial
// character is peeked or EOF is reached.
func (lx *Lexer) skipTrivia() {
	for {
		r, ok := lx.cur.peek()
		if !ok {
			return
		}
		if isWhitespace(r) {
			lx.advance()
			continue
		}
		if r == '/' {
			if r2, ok2 := lx.cur.peek2(); ok2 && r2 == '/' {
				lx.skipLineComment()
				continue
			}
			if r2, ok2 := lx.cur.peek2(); ok2 && r2 == '*' {
				lx.skipBlockComment()
				continue
			}
		}
		return
	}
}

func (lx *Lexer) skipLineComment() {
	for {
		r, ok := lx.cur.peek()
		if !ok || r == '\n' || r == 0 {
			return
		}
		lx.advance()
	}
}

func (lx *Lexer) skipBlockComment() {
	lx.advance() // '/'
	lx.advance() // '*'
	for {
		r, ok := lx.cur.peek()
		if !ok {
			return // EOF inside a block comment terminates the scan silently
		}
		if r == '*' {
			if r2, ok2 := lx.cur.peek2(); ok2 && r2 == '/' {
				lx.advance()
				lx.advance()
				return
			}
		}
		lx.advance()
	}
}

// Next produces the next Token, or reports ok == false when the source is
// exhausted.
func (lx *Lexer) Next() (Token, bool) {
	lx.skipTrivia()

	r, ok := lx.cur.peek()
	if !ok {
		return Token{}, false
	}

	start := lx.cur.index()
	line, column, lineStart := lx.line, lx.column, lx.lineStart

	switch {
	case r == '\'' || r == '"':
		return lx.scanString(start, line, column, lineStart), true
	case r == '.':
		if r2, ok2 := lx.cur.peek2(); ok2 && isDecimalDigit(r2) {
			return lx.scanNumber(start, line, column, lineStart), true
		}
		lx.advance()
		return lx.finish(Dot, start, line, column, lineStart), true
	case isDecimalDigit(r):
		return lx.scanNumber(start, line, column, lineStart), true
	case isIdentStart(r):
		return lx.scanIdentifier(start, line, column, lineStart), true
	default:
		if kind, ok := punctuation[r]; ok {
			lx.advance()
			return lx.finish(kind, start, line, column, lineStart), true
		}
		lx.advance()
		return lx.errorToken(start, line, column, lineStart, "unexpected character "+string(r)), true
	}
}

func (lx *Lexer) finish(kind Kind, start, line, column, lineStart int) Token {
	return Token{
		Kind:      kind,
		Span:      Span{start, lx.cur.index()},
		Line:      line,
		Column:    column,
		LineStart: lineStart,
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (lx *Lexer) scanIdentifier(start, line, column, lineStart int) Token {
	for {
		r, ok := lx.cur.peek()
		if !ok || !isIdentContinue(r) {
			break
		}
		lx.advance()
	}
	end := lx.cur.index()
	text := lx.cur.src[start:end]
	kind := Identifier
	if kw, ok := keywords[text]; ok {
		kind = kw
	}
	tok := Token{
		Kind:      kind,
		Span:      Span{start, end},
		Line:      line,
		Column:    column,
		LineStart: lineStart,
	}
	if kind == Identifier {
		tok.Text = borrowedText(text)
	}
	return tok
}

func (lx *Lexer) errorToken(start, line, column, lineStart int, msg string) Token {
	lx.seenError = true
	return Token{
		Kind:      Error,
		Span:      Span{start, lx.cur.index()},
		Line:      line,
		Column:    column,
		LineStart: lineStart,
		Message:   msg,
	}
}
