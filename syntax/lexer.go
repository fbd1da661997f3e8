package syntax

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// TokenType represents the kind of token in the type-expression surface.
type TokenType int

const (
	EOF TokenType = iota
	IDENT      // type name such as Map
	UNDERSCORE // "_", a fresh placeholder
	ELLIPSIS   // "...", the trailing rest wildcard
	LANGLE     // "<"
	RANGLE     // ">"
	COMMA      // ","
)

// Token is a lexical token with its raw text and byte offset in the input.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    int
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

// Lex scans src into tokens, ending with an EOF token.
func Lex(src string) ([]Token, error) {
	var tokens []Token
	runes := []rune(src)
	pos := 0
	for i := 0; i < len(runes); {
		r := runes[i]
		width := len(string(r))
		switch {
		case unicode.IsSpace(r):
			i++
			pos += width
		case r == '<':
			tokens = append(tokens, Token{Type: LANGLE, Lexeme: "<", Pos: pos})
			i++
			pos += width
		case r == '>':
			tokens = append(tokens, Token{Type: RANGLE, Lexeme: ">", Pos: pos})
			i++
			pos += width
		case r == ',':
			tokens = append(tokens, Token{Type: COMMA, Lexeme: ",", Pos: pos})
			i++
			pos += width
		case r == '.':
			if !strings.HasPrefix(string(runes[i:]), "...") {
				return nil, errors.Errorf("unexpected character '.' at offset %d (did you mean '...'?)", pos)
			}
			tokens = append(tokens, Token{Type: ELLIPSIS, Lexeme: "...", Pos: pos})
			i += 3
			pos += 3
		case r == '_' && !isIdentPart(peekRune(runes, i+1)):
			tokens = append(tokens, Token{Type: UNDERSCORE, Lexeme: "_", Pos: pos})
			i++
			pos += width
		case unicode.IsLetter(r) || r == '_':
			start, startPos := i, pos
			for i < len(runes) && isIdentPart(runes[i]) {
				pos += len(string(runes[i]))
				i++
			}
			tokens = append(tokens, Token{Type: IDENT, Lexeme: string(runes[start:i]), Pos: startPos})
		default:
			return nil, errors.Errorf("unexpected character %q at offset %d", r, pos)
		}
	}
	return append(tokens, Token{Type: EOF, Pos: pos}), nil
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func peekRune(runes []rune, i int) rune {
	if i >= len(runes) {
		return 0
	}
	return runes[i]
}
