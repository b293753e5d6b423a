package calc

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenType classifies a lexeme.
type tokenType int

const (
	tokEOF tokenType = iota
	tokIllegal
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokDot // "·" joins unit factors
	tokLParen
	tokRParen
)

var tokenNames = map[tokenType]string{
	tokEOF:     "end of input",
	tokIllegal: "illegal character",
	tokNumber:  "number",
	tokIdent:   "identifier",
	tokPlus:    "'+'",
	tokMinus:   "'-'",
	tokStar:    "'*'",
	tokSlash:   "'/'",
	tokCaret:   "'^'",
	tokDot:     "'·'",
	tokLParen:  "'('",
	tokRParen:  "')'",
}

func (t tokenType) String() string { return tokenNames[t] }

// token is a lexeme and its byte offset in the input.
type token struct {
	typ tokenType
	lit string
	pos int
}

func (t token) String() string {
	if t.typ == tokNumber || t.typ == tokIdent || t.typ == tokIllegal {
		return fmt.Sprintf("%s %q", t.typ, t.lit)
	}
	return t.typ.String()
}

// lexer splits an expression into tokens.
type lexer struct {
	input        string
	position     int  // start of the current char
	readPosition int  // start of the next char
	ch           rune // current char, 0 at end of input
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) next() token {
	for unicode.IsSpace(l.ch) {
		l.readChar()
	}

	pos := l.position
	single := func(t tokenType) token {
		lit := string(l.ch)
		l.readChar()
		return token{typ: t, lit: lit, pos: pos}
	}

	switch {
	case l.ch == 0:
		return token{typ: tokEOF, pos: pos}
	case l.ch == '+':
		return single(tokPlus)
	case l.ch == '-':
		return single(tokMinus)
	case l.ch == '*':
		return single(tokStar)
	case l.ch == '/':
		return single(tokSlash)
	case l.ch == '^':
		return single(tokCaret)
	case l.ch == '·':
		return single(tokDot)
	case l.ch == '(':
		return single(tokLParen)
	case l.ch == ')':
		return single(tokRParen)
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return token{typ: tokNumber, lit: l.readNumber(), pos: pos}
	case isLetter(l.ch):
		return token{typ: tokIdent, lit: l.readIdent(), pos: pos}
	default:
		return single(tokIllegal)
	}
}

// readNumber reads digits with an optional fraction and exponent.
func (l *lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) || l.peekChar() == '-' || l.peekChar() == '+') {
		l.readChar()
		if l.ch == '-' || l.ch == '+' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

func (l *lexer) readIdent() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
