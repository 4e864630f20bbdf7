package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	// Single-character tokens
	KindLeftParen Kind = iota
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindComma
	KindDot
	KindMinus
	KindPlus
	KindSemicolon
	KindSlash
	KindStar

	// One or two character tokens
	KindBang
	KindBangEqual
	KindEqual
	KindEqualEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual

	// Literals
	KindIdentifier
	KindString
	KindNumber

	// Keywords
	KindAnd
	KindClass
	KindElse
	KindFalse
	KindFor
	KindFun
	KindIf
	KindNil
	KindOr
	KindPrint
	KindReturn
	KindSuper
	KindThis
	KindTrue
	KindVar
	KindWhile

	// Error tokens. The scanner never aborts; malformed input shows up
	// as one of these in the output stream.
	KindUnexpectedChar
	KindUnterminatedString

	KindEOF
)

var kindNames = [...]string{
	KindLeftParen:          "LEFT_PAREN",
	KindRightParen:         "RIGHT_PAREN",
	KindLeftBrace:          "LEFT_BRACE",
	KindRightBrace:         "RIGHT_BRACE",
	KindComma:              "COMMA",
	KindDot:                "DOT",
	KindMinus:              "MINUS",
	KindPlus:               "PLUS",
	KindSemicolon:          "SEMICOLON",
	KindSlash:              "SLASH",
	KindStar:               "STAR",
	KindBang:               "BANG",
	KindBangEqual:          "BANG_EQUAL",
	KindEqual:              "EQUAL",
	KindEqualEqual:         "EQUAL_EQUAL",
	KindGreater:            "GREATER",
	KindGreaterEqual:       "GREATER_EQUAL",
	KindLess:               "LESS",
	KindLessEqual:          "LESS_EQUAL",
	KindIdentifier:         "IDENTIFIER",
	KindString:             "STRING",
	KindNumber:             "NUMBER",
	KindAnd:                "AND",
	KindClass:              "CLASS",
	KindElse:               "ELSE",
	KindFalse:              "FALSE",
	KindFor:                "FOR",
	KindFun:                "FUN",
	KindIf:                 "IF",
	KindNil:                "NIL",
	KindOr:                 "OR",
	KindPrint:              "PRINT",
	KindReturn:             "RETURN",
	KindSuper:              "SUPER",
	KindThis:               "THIS",
	KindTrue:               "TRUE",
	KindVar:                "VAR",
	KindWhile:              "WHILE",
	KindUnexpectedChar:     "UNEXPECTED_CHAR",
	KindUnterminatedString: "UNTERMINATED_STRING",
	KindEOF:                "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsError reports whether k marks malformed input.
func (k Kind) IsError() bool {
	return k == KindUnexpectedChar || k == KindUnterminatedString
}

// keywords maps reserved-word spellings to their token kinds. Built once,
// read-only, shared by all scanner instances.
var keywords = map[string]Kind{
	"and":    KindAnd,
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"for":    KindFor,
	"fun":    KindFun,
	"if":     KindIf,
	"nil":    KindNil,
	"or":     KindOr,
	"print":  KindPrint,
	"return": KindReturn,
	"super":  KindSuper,
	"this":   KindThis,
	"true":   KindTrue,
	"var":    KindVar,
	"while":  KindWhile,
}

// LookupKeyword returns the keyword kind for an identifier spelling, or
// KindIdentifier when the spelling is not reserved. Matching is exact and
// case-sensitive.
func LookupKeyword(name string) Kind {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return KindIdentifier
}

// Token represents a lexical unit. Literal is nil except for String tokens
// (the decoded string, quotes stripped) and Number tokens (a float64).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Kind, t.Lexeme, t.Literal)
}
