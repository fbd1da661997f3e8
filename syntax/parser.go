package syntax

import (
	"log/slog"

	"github.com/monolang/mono/typerr"
	"github.com/monolang/mono/types"
	"github.com/pkg/errors"
)

// Parser builds type terms from text, allocating a fresh placeholder from
// the session's store for every `_` and checking declared arities through
// the session's env.
//
// Grammar:
//
//	term := IDENT ('<' term (',' term)* '>')? | '_'
//
// where '...' is also accepted as the last element of an argument list.
type Parser struct {
	env    *types.Env
	store  *types.Store
	logger *slog.Logger
}

func NewParser(env *types.Env, store *types.Store) *Parser {
	return &Parser{
		env:    env,
		store:  store,
		logger: slog.Default().With("section", "syntax"),
	}
}

// ParseTerm parses a single type expression, such as `Map<String, _>`.
// Construction errors (arity, misplaced rest) pass through with their own
// codes; malformed input surfaces as a Parse diagnostic.
func (p *Parser) ParseTerm(src string) (types.Term, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, typerr.New(typerr.NewParse{Src: src, From: err})
	}
	st := &parserState{parser: p, tokens: tokens}
	term, err := st.parseTerm()
	if err != nil {
		if typerr.CodeOf(err) != typerr.None {
			return nil, err
		}
		return nil, typerr.New(typerr.NewParse{Src: src, From: err})
	}
	if tok := st.peek(); tok.Type != EOF {
		return nil, typerr.New(typerr.NewParse{Src: src, From: errors.Errorf("unexpected trailing %s at offset %d", tok, tok.Pos)})
	}
	if _, isRest := term.(types.Rest); isRest {
		return nil, typerr.New(typerr.NewParse{Src: src, From: errors.New("rest wildcard '...' is only allowed inside a type argument list")})
	}
	p.logger.Debug("parsed type expression", "src", src, "term", term.String())
	return term, nil
}

type parserState struct {
	parser *Parser
	tokens []Token
	pos    int
}

func (s *parserState) peek() Token {
	return s.tokens[s.pos]
}

func (s *parserState) next() Token {
	tok := s.tokens[s.pos]
	if tok.Type != EOF {
		s.pos++
	}
	return tok
}

func (s *parserState) parseTerm() (types.Term, error) {
	switch tok := s.next(); tok.Type {
	case UNDERSCORE:
		return s.parser.store.Allocate(), nil
	case ELLIPSIS:
		return types.RestArg, nil
	case IDENT:
		if s.peek().Type != LANGLE {
			return s.instantiate(tok.Lexeme, nil)
		}
		s.next() // consume '<'
		var args []types.Term
		for {
			arg, err := s.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			switch sep := s.next(); sep.Type {
			case COMMA:
				continue
			case RANGLE:
				return s.instantiate(tok.Lexeme, args)
			default:
				return nil, errors.Errorf("expected ',' or '>' after type argument, got %s at offset %d", sep, sep.Pos)
			}
		}
	default:
		return nil, errors.Errorf("expected a type expression, got %s at offset %d", tok, tok.Pos)
	}
}

func (s *parserState) instantiate(name string, args []types.Term) (types.Term, error) {
	term, err := s.parser.env.Instantiate(name, args...)
	if err != nil {
		return nil, err
	}
	return term, nil
}
