package expression

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenNumber // 12, 3.5, .5, 5.

	TokenPlus        // +
	TokenMinus       // -
	TokenStar        // *
	TokenDoubleStar  // **
	TokenSlash       // /
	TokenDoubleSlash // //
	TokenPercent     // %

	TokenLeftParen  // (
	TokenRightParen // )
)

// Token is a lexical token with its byte position in the input
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "end of expression"
	case TokenNumber:
		return fmt.Sprintf("number %s", t.Value)
	default:
		return fmt.Sprintf("'%s'", t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenDoubleStar:
		return "DOUBLE_STAR"
	case TokenSlash:
		return "SLASH"
	case TokenDoubleSlash:
		return "DOUBLE_SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}

// Lexer tokenizes an expression string
type Lexer struct {
	input        string
	position     int  // current position (points to ch)
	readPosition int  // next reading position
	ch           byte // current char under examination
}

// NewLexer creates a lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token in the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position
	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Position: pos}
	case isDigit(l.ch) || l.ch == '.':
		return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
	}

	var tok Token
	switch l.ch {
	case '+':
		tok = Token{Type: TokenPlus, Value: "+", Position: pos}
	case '-':
		tok = Token{Type: TokenMinus, Value: "-", Position: pos}
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = Token{Type: TokenDoubleStar, Value: "**", Position: pos}
		} else {
			tok = Token{Type: TokenStar, Value: "*", Position: pos}
		}
	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			tok = Token{Type: TokenDoubleSlash, Value: "//", Position: pos}
		} else {
			tok = Token{Type: TokenSlash, Value: "/", Position: pos}
		}
	case '%':
		tok = Token{Type: TokenPercent, Value: "%", Position: pos}
	case '(':
		tok = Token{Type: TokenLeftParen, Value: "(", Position: pos}
	case ')':
		tok = Token{Type: TokenRightParen, Value: ")", Position: pos}
	default:
		tok = Token{Type: TokenIllegal, Value: string(l.ch), Position: pos}
	}

	l.readChar()
	return tok
}

// Tokenize returns every token up to and including EOF
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// readNumber consumes a run of digits and dots; the parser validates it
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
