// Package lex implements a source-position-aware lexer for the Protocol
// Buffers schema language (.proto): a lazy, restartable-only-by-recreation
// stream of Tokens with spans and (line, column) metadata, plus the
// skeletal parser-facing diagnostics helper required by §6.
package lex

// Span is a half-open [Start, End) region over the source, measured in
// byte offsets. Empty spans (Start == End) are legal and represent absent
// optional grammar components, e.g. the integral part of ".5".
type Span struct {
	Start, End int
}

// Len returns the span's width in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Text is a string that either borrows a substring of the original source
// (Owned == false: identifiers, string literals with no escape sequences)
// or owns freshly materialized bytes (Owned == true: escaped string
// literals). This is the two-variant sum type called for in §9's design
// note, expressed at one string header of overhead.
type Text struct {
	s     string
	owned bool
}

// String returns the text's value regardless of whether it is borrowed or
// owned.
func (t Text) String() string { return t.s }

// Owned reports whether t required allocation (true) or aliases the source
// text (false).
func (t Text) Owned() bool { return t.owned }

func borrowedText(s string) Text { return Text{s: s} }
func ownedText(s string) Text    { return Text{s: s, owned: true} }

// Kind is a closed sum type identifying what a Token represents.
type Kind int

const (
	// EOF marks the end of the token stream. Next never actually returns
	// an EOF token; it is provided so zero-valued Tokens are distinguishable.
	EOF Kind = iota

	Identifier
	IntegerLiteral
	FloatLiteral
	StringLiteral
	// Error carries a human-readable diagnostic; see Token.Message.
	Error

	// Punctuation.
	Semicolon // ;
	Colon     // :
	LParen    // (
	LBracket  // [
	Comma     // ,
	Equals    // =
	RParen    // )
	RBracket  // ]
	Minus     // -
	LBrace    // {
	Less      // <
	Slash     // /
	Plus      // +
	RBrace    // }
	Greater   // >
	Dot       // .

	// Keywords, in the order listed in the glossary (39 entries).
	KwImport
	KwSyntax
	KwBool
	KwTo
	KwOneOf
	KwFloat
	KwDouble
	KwMap
	KwWeak
	KwInt32
	KwExtensions
	KwPublic
	KwInt64
	KwPackage
	KwUint32
	KwMax
	KwOption
	KwUint64
	KwReserved
	KwInf
	KwSint32
	KwEnum
	KwRepeated
	KwSint64
	KwMessage
	KwOptional
	KwFixed32
	KwExtend
	KwRequired
	KwFixed64
	KwService
	KwSfixed32
	KwRPC
	KwString
	KwSfixed64
	KwStream
	KwBytes
	KwGroup
	KwReturns
)

// Token pairs a Kind with its metadata: a span, the (line, column) of its
// first character, the byte offset where that line begins, and whatever
// literal payload the Kind carries.
type Token struct {
	Kind Kind

	Span   Span
	Line   int // 1-based
	Column int // 1-based
	// LineStart is the byte offset at which Line begins, so a diagnostic
	// can slice out and render the offending source line.
	LineStart int

	// Text holds the payload for Identifier and StringLiteral.
	Text Text
	// Int holds the payload for IntegerLiteral.
	Int uint64
	// Float holds the payload for FloatLiteral.
	Float float64
	// Message holds the diagnostic string for Error.
	Message string
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	EOF:            "EOF",
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	FloatLiteral:   "FloatLiteral",
	StringLiteral:  "StringLiteral",
	Error:          "Error",
	Semicolon:      "Semicolon",
	Colon:          "Colon",
	LParen:         "LParen",
	LBracket:       "LBracket",
	Comma:          "Comma",
	Equals:         "Equals",
	RParen:         "RParen",
	RBracket:       "RBracket",
	Minus:          "Minus",
	LBrace:         "LBrace",
	Less:           "Less",
	Slash:          "Slash",
	Plus:           "Plus",
	RBrace:         "RBrace",
	Greater:        "Greater",
	Dot:            "Dot",
	KwImport:       "Import",
	KwSyntax:       "Syntax",
	KwBool:         "Bool",
	KwTo:           "To",
	KwOneOf:        "OneOf",
	KwFloat:        "Float",
	KwDouble:       "Double",
	KwMap:          "Map",
	KwWeak:         "Weak",
	KwInt32:        "Int32",
	KwExtensions:   "Extensions",
	KwPublic:       "Public",
	KwInt64:        "Int64",
	KwPackage:      "Package",
	KwUint32:       "Uint32",
	KwMax:          "Max",
	KwOption:       "Option",
	KwUint64:       "Uint64",
	KwReserved:     "Reserved",
	KwInf:          "Inf",
	KwSint32:       "Sint32",
	KwEnum:         "Enum",
	KwRepeated:     "Repeated",
	KwSint64:       "Sint64",
	KwMessage:      "Message",
	KwOptional:     "Optional",
	KwFixed32:      "Fixed32",
	KwExtend:       "Extend",
	KwRequired:     "Required",
	KwFixed64:      "Fixed64",
	KwService:      "Service",
	KwSfixed32:     "Sfixed32",
	KwRPC:          "RPC",
	KwString:       "String",
	KwSfixed64:     "Sfixed64",
	KwStream:       "Stream",
	KwBytes:        "Bytes",
	KwGroup:        "Group",
	KwReturns:      "Returns",
}
