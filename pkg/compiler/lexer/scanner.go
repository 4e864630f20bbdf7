package lexer

import (
	"strconv"
)

// Scanner performs lexical analysis on Lox source. The source is held as a
// byte slice with an integer cursor so every character inspection is an O(1)
// index. All structural characters of the language are ASCII; multi-byte
// UTF-8 sequences can only occur inside string literals and comments, where
// they pass through untouched.
type Scanner struct {
	source  []byte
	tokens  []Token
	start   int
	current int
	line    int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// ScanTokens consumes the entire source and returns the ordered token
// sequence. The sequence always ends with exactly one EOF token. Malformed
// input is represented by error-kind tokens interleaved at the offending
// positions; the scan itself never fails and always covers the whole input.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{Kind: KindEOF, Line: s.line})
	return s.tokens
}

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(KindLeftParen)
	case ')':
		s.addToken(KindRightParen)
	case '{':
		s.addToken(KindLeftBrace)
	case '}':
		s.addToken(KindRightBrace)
	case ',':
		s.addToken(KindComma)
	case '.':
		s.addToken(KindDot)
	case '-':
		s.addToken(KindMinus)
	case '+':
		s.addToken(KindPlus)
	case ';':
		s.addToken(KindSemicolon)
	case '*':
		s.addToken(KindStar)
	case '!':
		if s.match('=') {
			s.addToken(KindBangEqual)
		} else {
			s.addToken(KindBang)
		}
	case '=':
		if s.match('=') {
			s.addToken(KindEqualEqual)
		} else {
			s.addToken(KindEqual)
		}
	case '<':
		if s.match('=') {
			s.addToken(KindLessEqual)
		} else {
			s.addToken(KindLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(KindGreaterEqual)
		} else {
			s.addToken(KindGreater)
		}
	case '/':
		if s.match('/') {
			// A comment runs to the end of the line and emits nothing.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.current++
			}
		} else {
			s.addToken(KindSlash)
		}
	case ' ', '\r', '\t':
		// Discarded.
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		if isDigit(ch) {
			s.scanNumber()
		} else if isAlpha(ch) {
			s.scanIdentifier()
		} else {
			s.addToken(KindUnexpectedChar)
		}
	}
}

// scanString consumes a string literal after its opening quote. Strings may
// span lines; no escape processing is performed. An unterminated literal
// yields an error token covering everything from the opening quote to the
// end of input.
func (s *Scanner) scanString() {
	startLine := s.line
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.isAtEnd() {
		s.tokens = append(s.tokens, Token{
			Kind:   KindUnterminatedString,
			Lexeme: string(s.source[s.start:s.current]),
			Line:   startLine,
		})
		return
	}

	// The closing quote.
	s.current++

	value := string(s.source[s.start+1 : s.current-1])
	s.tokens = append(s.tokens, Token{
		Kind:    KindString,
		Lexeme:  string(s.source[s.start:s.current]),
		Literal: value,
		Line:    startLine,
	})
}

// scanNumber consumes a maximal digit run with an optional fractional part.
// A trailing '.' with no digit after it is left for the next token.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.current++
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		// Consume the "."
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	// The lexeme is digits with at most one interior dot, so this parse
	// cannot fail.
	value, _ := strconv.ParseFloat(string(s.source[s.start:s.current]), 64)
	s.addTokenLiteral(KindNumber, value)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	s.addToken(LookupKeyword(string(s.source[s.start:s.current])))
}

// advance consumes and returns the next character.
func (s *Scanner) advance() byte {
	ch := s.source[s.current]
	s.current++
	return ch
}

// match consumes the next character only if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() {
		return false
	}
	if s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the next unconsumed character without advancing, or 0 at end
// of input.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the character one past the cursor, or 0 when that runs
// off the end.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(kind Kind) {
	s.addTokenLiteral(kind, nil)
}

func (s *Scanner) addTokenLiteral(kind Kind, literal any) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  string(s.source[s.start:s.current]),
		Literal: literal,
		Line:    s.line,
	})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
