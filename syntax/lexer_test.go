package syntax_test

import (
	"testing"

	"github.com/monolang/mono/syntax"
	"github.com/stretchr/testify/assert"
)

func tokenTypes(tokens []syntax.Token) []syntax.TokenType {
	kinds := make([]syntax.TokenType, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Type
	}
	return kinds
}

func TestLexTypeExpression(t *testing.T) {
	tokens, err := syntax.Lex("Map<String, _>")
	assert.NoError(t, err)
	assert.Equal(t, []syntax.TokenType{
		syntax.IDENT, syntax.LANGLE, syntax.IDENT, syntax.COMMA, syntax.UNDERSCORE, syntax.RANGLE, syntax.EOF,
	}, tokenTypes(tokens))
	assert.Equal(t, "Map", tokens[0].Lexeme)
	assert.Equal(t, "String", tokens[2].Lexeme)
}

func TestLexEllipsis(t *testing.T) {
	tokens, err := syntax.Lex("Array<...>")
	assert.NoError(t, err)
	assert.Equal(t, []syntax.TokenType{
		syntax.IDENT, syntax.LANGLE, syntax.ELLIPSIS, syntax.RANGLE, syntax.EOF,
	}, tokenTypes(tokens))
}

func TestLexUnderscorePrefixedIdent(t *testing.T) {
	// a lone underscore is a placeholder, but _name is an identifier
	tokens, err := syntax.Lex("_result")
	assert.NoError(t, err)
	assert.Equal(t, []syntax.TokenType{syntax.IDENT, syntax.EOF}, tokenTypes(tokens))
	assert.Equal(t, "_result", tokens[0].Lexeme)
}

func TestLexOffsets(t *testing.T) {
	tokens, err := syntax.Lex("Map <Int>")
	assert.NoError(t, err)
	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 4, tokens[1].Pos)
	assert.Equal(t, 5, tokens[2].Pos)
}

func TestLexErrors(t *testing.T) {
	_, err := syntax.Lex("Map{String}")
	assert.Error(t, err)

	_, err = syntax.Lex("Map<A..B>")
	assert.Error(t, err)
}
