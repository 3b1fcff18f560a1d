package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	t.Run("operators", func(t *testing.T) {
		tokens := NewLexer("2**3 // 4 * 5 / 6 % 7").Tokenize()

		want := []TokenType{
			TokenNumber, TokenDoubleStar, TokenNumber,
			TokenDoubleSlash, TokenNumber,
			TokenStar, TokenNumber,
			TokenSlash, TokenNumber,
			TokenPercent, TokenNumber,
			TokenEOF,
		}

		got := make([]TokenType, len(tokens))
		for i, tok := range tokens {
			got[i] = tok.Type
		}
		assert.Equal(t, want, got)
	})

	t.Run("numbers and positions", func(t *testing.T) {
		tokens := NewLexer("(3.5 + .5) - 12").Tokenize()

		assert.Equal(t, Token{Type: TokenLeftParen, Value: "(", Position: 0}, tokens[0])
		assert.Equal(t, Token{Type: TokenNumber, Value: "3.5", Position: 1}, tokens[1])
		assert.Equal(t, Token{Type: TokenPlus, Value: "+", Position: 5}, tokens[2])
		assert.Equal(t, Token{Type: TokenNumber, Value: ".5", Position: 7}, tokens[3])
		assert.Equal(t, Token{Type: TokenRightParen, Value: ")", Position: 9}, tokens[4])
		assert.Equal(t, Token{Type: TokenMinus, Value: "-", Position: 11}, tokens[5])
		assert.Equal(t, Token{Type: TokenNumber, Value: "12", Position: 13}, tokens[6])
		assert.Equal(t, TokenEOF, tokens[7].Type)
	})

	t.Run("malformed number stays one token", func(t *testing.T) {
		tokens := NewLexer("1.2.3").Tokenize()
		assert.Len(t, tokens, 2)
		assert.Equal(t, "1.2.3", tokens[0].Value)
	})

	t.Run("illegal character", func(t *testing.T) {
		tok := NewLexer("a").NextToken()
		assert.Equal(t, TokenIllegal, tok.Type)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, TokenEOF, NewLexer("").NextToken().Type)
		assert.Equal(t, TokenEOF, NewLexer("   ").NextToken().Type)
	})
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "DOUBLE_STAR", TokenDoubleStar.String())
	assert.Equal(t, "NUMBER", TokenNumber.String())
	assert.Equal(t, "'+'", Token{Type: TokenPlus, Value: "+"}.String())
	assert.Equal(t, "end of expression", Token{Type: TokenEOF}.String())
}
