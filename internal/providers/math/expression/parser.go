package expression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
)

// SyntaxError reports a malformed expression with its position
type SyntaxError struct {
	Message  string
	Position int // byte offset into the input
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at column %d)", se.Message, se.Position+1)
}

// parser is a recursive-descent parser that evaluates while it parses.
// The first arithmetic failure is remembered and parsing continues, so a
// malformed expression always reports its syntax error first.
type parser struct {
	lexer    *Lexer
	current  Token
	depth    int
	maxDepth int
	evalErr  error
}

func newParser(input string, maxDepth int) *parser {
	return &parser{
		lexer:    NewLexer(input),
		maxDepth: maxDepth,
	}
}

func (p *parser) parse() (common.Value, error) {
	p.advance()

	v, err := p.parseExpr()
	if err != nil {
		return common.Value{}, err
	}
	if p.current.Type != TokenEOF {
		return common.Value{}, p.syntaxError("unexpected %s", p.current)
	}
	if p.evalErr != nil {
		return common.Value{}, p.evalErr
	}
	return v, nil
}

func (p *parser) advance() {
	p.current = p.lexer.NextToken()
}

// parseExpr parses additive expressions
func (p *parser) parseExpr() (common.Value, error) {
	left, err := p.parseTerm()
	if err != nil {
		return common.Value{}, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current.Type
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return common.Value{}, err
		}

		if op == TokenPlus {
			left = common.Add(left, right)
		} else {
			left = common.Sub(left, right)
		}
	}
	return left, nil
}

// parseTerm parses multiplicative expressions
func (p *parser) parseTerm() (common.Value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return common.Value{}, err
	}

	for {
		op := p.current.Type
		if op != TokenStar && op != TokenSlash && op != TokenDoubleSlash && op != TokenPercent {
			return left, nil
		}
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return common.Value{}, err
		}

		switch op {
		case TokenStar:
			left = common.Mul(left, right)
		case TokenSlash:
			left = p.check(common.Div(left, right))
		case TokenDoubleSlash:
			left = p.check(common.FloorDiv(left, right))
		case TokenPercent:
			left = p.check(common.Mod(left, right))
		}
	}
}

// parseUnary parses prefix signs
func (p *parser) parseUnary() (common.Value, error) {
	if p.current.Type != TokenPlus && p.current.Type != TokenMinus {
		return p.parsePower()
	}

	op := p.current.Type
	if err := p.enter(); err != nil {
		return common.Value{}, err
	}
	defer p.leave()
	p.advance()

	operand, err := p.parseUnary()
	if err != nil {
		return common.Value{}, err
	}
	if op == TokenMinus {
		return common.Neg(operand), nil
	}
	return operand, nil
}

// parsePower parses right-associative exponentiation
func (p *parser) parsePower() (common.Value, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return common.Value{}, err
	}
	if p.current.Type != TokenDoubleStar {
		return base, nil
	}
	if err := p.enter(); err != nil {
		return common.Value{}, err
	}
	defer p.leave()
	p.advance()

	exponent, err := p.parseUnary()
	if err != nil {
		return common.Value{}, err
	}
	return p.check(common.Pow(base, exponent)), nil
}

// parsePrimary parses numbers and parenthesized expressions
func (p *parser) parsePrimary() (common.Value, error) {
	switch p.current.Type {
	case TokenNumber:
		v, err := p.parseNumber(p.current)
		if err != nil {
			return common.Value{}, err
		}
		p.advance()
		return v, nil

	case TokenLeftParen:
		open := p.current
		if err := p.enter(); err != nil {
			return common.Value{}, err
		}
		defer p.leave()
		p.advance()

		v, err := p.parseExpr()
		if err != nil {
			return common.Value{}, err
		}
		if p.current.Type != TokenRightParen {
			if p.current.Type == TokenEOF {
				return common.Value{}, &SyntaxError{Message: "unclosed parenthesis", Position: open.Position}
			}
			return common.Value{}, p.syntaxError("expected ')' but found %s", p.current)
		}
		p.advance()
		return v, nil

	case TokenEOF:
		return common.Value{}, p.syntaxError("unexpected end of expression")

	default:
		return common.Value{}, p.syntaxError("unexpected %s", p.current)
	}
}

// parseNumber converts a literal; integers without a decimal point stay
// integral unless they exceed int64
func (p *parser) parseNumber(tok Token) (common.Value, error) {
	text := tok.Value
	if text == "." || strings.Count(text, ".") > 1 {
		return common.Value{}, &SyntaxError{Message: fmt.Sprintf("invalid number literal %q", text), Position: tok.Position}
	}

	if !strings.Contains(text, ".") {
		if len(text) > 1 && text[0] == '0' && strings.Trim(text, "0") != "" {
			return common.Value{}, &SyntaxError{Message: fmt.Sprintf("leading zeros are not permitted in %q", text), Position: tok.Position}
		}
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return common.Int(i), nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return common.Value{}, &SyntaxError{Message: fmt.Sprintf("invalid number literal %q", text), Position: tok.Position}
	}
	return common.Float(f), nil
}

// check records the first arithmetic failure and keeps parsing
func (p *parser) check(v common.Value, err error) common.Value {
	if err != nil && p.evalErr == nil {
		p.evalErr = err
	}
	return v
}

func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return fmt.Errorf("%w (limit %d)", ErrTooDeep, p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) syntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf(format, args...),
		Position: p.current.Position,
	}
}
