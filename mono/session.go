package mono

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/monolang/mono/syntax"
	"github.com/monolang/mono/types"
)

// Session owns everything one type-checking run needs: the declared-arity
// environment, the placeholder store, the unifier, and a parser bound to
// that store. Independent sessions share no mutable state; placeholder ids
// are only meaningful within the session that allocated them.
type Session struct {
	Env     *types.Env
	Store   *types.Store
	Unifier *types.Unifier
	parser  *syntax.Parser
	logger  *slog.Logger
}

func NewSession() *Session {
	env := types.NewEnv()
	store := types.NewStore()
	return &Session{
		Env:     env,
		Store:   store,
		Unifier: types.NewUnifier(store),
		parser:  syntax.NewParser(env, store),
		logger:  slog.Default().With("section", "session"),
	}
}

// ParseTerm builds a term from a type expression, allocating a fresh
// placeholder for every `_`.
func (s *Session) ParseTerm(src string) (types.Term, error) {
	return s.parser.ParseTerm(src)
}

// Binding is one placeholder resolution produced by a unification.
type Binding struct {
	ID   types.PlaceholderID
	Term types.Term
}

// Report describes the outcome of a successful unification.
type Report struct {
	Left, Right types.Term
	// Applied is the common shape after substituting every resolved
	// placeholder, rendered for diagnostics.
	Applied string
	// Bindings lists each resolved placeholder in id order.
	Bindings []Binding
}

func (r Report) String() string {
	sb := &strings.Builder{}
	for _, b := range r.Bindings {
		fmt.Fprintf(sb, "_%d := %s\n", b.ID, b.Term)
	}
	fmt.Fprintf(sb, "ok: %s\n", r.Applied)
	return sb.String()
}

// UnifyText parses both sources within this session and unifies them.
func (s *Session) UnifyText(a, b string) (Report, error) {
	left, err := s.ParseTerm(a)
	if err != nil {
		return Report{}, err
	}
	right, err := s.ParseTerm(b)
	if err != nil {
		return Report{}, err
	}
	return s.Unify(left, right)
}

// Unify unifies two terms and reports the placeholder bindings they caused.
func (s *Session) Unify(left, right types.Term) (Report, error) {
	if err := s.Unifier.Unify(left, right); err != nil {
		return Report{}, err
	}
	report := Report{
		Left:    left,
		Right:   right,
		Applied: s.Store.Describe(left),
	}
	seen := make(map[types.PlaceholderID]bool)
	for _, id := range append(types.PlaceholderIDs(left), types.PlaceholderIDs(right)...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		if bound, ok := s.Store.Lookup(id); ok {
			report.Bindings = append(report.Bindings, Binding{ID: id, Term: bound})
		}
	}
	sort.Slice(report.Bindings, func(i, j int) bool {
		return report.Bindings[i].ID < report.Bindings[j].ID
	})
	s.logger.Debug("unified", "left", left.String(), "right", right.String(), "bindings", len(report.Bindings))
	return report, nil
}
