package lex

// keywords is the fixed, case-sensitive table of 39 reserved words (see the
// glossary's "Keyword set (39)"). A lexeme that starts an identifier scan is
// looked up here after the full lexeme is captured; a hit yields the
// keyword Kind, otherwise the lexeme becomes an Identifier.
var keywords = map[string]Kind{
	"import":     KwImport,
	"syntax":     KwSyntax,
	"bool":       KwBool,
	"to":         KwTo,
	"oneOf":      KwOneOf,
	"float":      KwFloat,
	"double":     KwDouble,
	"map":        KwMap,
	"weak":       KwWeak,
	"int32":      KwInt32,
	"extensions": KwExtensions,
	"public":     KwPublic,
	"int64":      KwInt64,
	"package":    KwPackage,
	"uint32":     KwUint32,
	"max":        KwMax,
	"option":     KwOption,
	"uint64":     KwUint64,
	"reserved":   KwReserved,
	"inf":        KwInf,
	"sint32":     KwSint32,
	"enum":       KwEnum,
	"repeated":   KwRepeated,
	"sint64":     KwSint64,
	"message":    KwMessage,
	"optional":   KwOptional,
	"fixed32":    KwFixed32,
	"extend":     KwExtend,
	"required":   KwRequired,
	"fixed64":    KwFixed64,
	"service":    KwService,
	"sfixed32":   KwSfixed32,
	"rpc":        KwRPC,
	"string":     KwString,
	"sfixed64":   KwSfixed64,
	"stream":     KwStream,
	"bytes":      KwBytes,
	"group":      KwGroup,
	"returns":    KwReturns,
}

// punctuation maps a single character to its (no-lookahead) token Kind.
// '.' is handled separately by the lexer since it is punctuation only when
// not followed by a decimal digit.
var punctuation = map[rune]Kind{
	';': Semicolon,
	':': Colon,
	'(': LParen,
	'[': LBracket,
	',': Comma,
	'=': Equals,
	')': RParen,
	']': RBracket,
	'-': Minus,
	'{': LBrace,
	'<': Less,
	'/': Slash,
	'+': Plus,
	'}': RBrace,
	'>': Greater,
}
