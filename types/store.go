package types

import (
	"log/slog"

	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"
	"github.com/monolang/mono/typerr"
)

// Store tracks every placeholder allocated during one type-checking session
// and the term each one has been resolved to, if any.
//
// A Store is exclusively owned by its session: it is mutable, not safe for
// concurrent use, and never shared across sessions (ids would collide).
// Bindings are held in an immutable map so that Snapshot is O(1), which is
// what makes speculative unification cheap.
type Store struct {
	next     PlaceholderID
	bindings *immutable.Map[PlaceholderID, Term]
	logger   *slog.Logger
}

func NewStore() *Store {
	return &Store{
		bindings: immutable.NewMap[PlaceholderID, Term](nil),
		logger:   slog.Default().With("section", "types"),
	}
}

// Allocate creates a fresh, unresolved placeholder. Ids are strictly
// increasing and never reused within a session.
func (s *Store) Allocate() Placeholder {
	p := Placeholder{id: s.next}
	s.next++
	return p
}

// Allocated reports whether id was handed out by this store.
func (s *Store) Allocated(id PlaceholderID) bool {
	return id < s.next
}

// Resolved reports whether id currently has a binding.
func (s *Store) Resolved(id PlaceholderID) bool {
	_, ok := s.bindings.Get(id)
	return ok
}

// Resolve binds id to term. Bindings are monotonic: a placeholder goes from
// unresolved to resolved exactly once, and never to a term that reaches back
// to the placeholder itself.
func (s *Store) Resolve(id PlaceholderID, term Term) error {
	if bound, ok := s.bindings.Get(id); ok {
		return typerr.New(typerr.NewAlreadyResolved{ID: id, Bound: bound})
	}
	if s.occursIn(id, term, set.New[PlaceholderID](8)) {
		return typerr.New(typerr.NewOccursCheckFailed{ID: id, In: term})
	}
	s.logger.Debug("resolving placeholder", "id", id, "term", term.String())
	s.bindings = s.bindings.Set(id, term)
	return nil
}

// Lookup returns the binding for id, following chains of resolved
// placeholders until it reaches a concrete term or an unresolved
// placeholder. Chains are not path-compressed. The second result is false
// when id itself is unresolved.
func (s *Store) Lookup(id PlaceholderID) (Term, bool) {
	term, ok := s.bindings.Get(id)
	if !ok {
		return nil, false
	}
	for {
		p, isPlaceholder := term.(Placeholder)
		if !isPlaceholder {
			return term, true
		}
		next, resolved := s.bindings.Get(p.id)
		if !resolved {
			return p, true
		}
		term = next
	}
}

// deref follows resolved placeholders so that unification always sees the
// representative term for each side.
func (s *Store) deref(t Term) Term {
	p, isPlaceholder := t.(Placeholder)
	if !isPlaceholder {
		return t
	}
	if bound, ok := s.Lookup(p.id); ok {
		return bound
	}
	return p
}

// occursIn reports whether placeholder id is reachable from term, looking
// through bindings. visited guards against revisiting shared placeholders.
func (s *Store) occursIn(id PlaceholderID, term Term, visited *set.Set[PlaceholderID]) bool {
	if p, isPlaceholder := term.(Placeholder); isPlaceholder {
		if p.id == id {
			return true
		}
		if !visited.Insert(p.id) {
			return false
		}
		if bound, ok := s.bindings.Get(p.id); ok {
			return s.occursIn(id, bound, visited)
		}
		return false
	}
	for child := range term.Children() {
		if s.occursIn(id, child, visited) {
			return true
		}
	}
	return false
}

// Apply substitutes every resolved placeholder in term, recursively.
// Unresolved placeholders are left in place. The result shares no
// placeholder chains with the store, so it is safe to print or compare.
func (s *Store) Apply(term Term) Term {
	if p, isPlaceholder := term.(Placeholder); isPlaceholder {
		bound, ok := s.Lookup(p.id)
		if !ok {
			return p
		}
		if q, still := bound.(Placeholder); still {
			// chain ends at an unresolved placeholder
			return q
		}
		return s.Apply(bound)
	}
	return term.doMap(s.Apply)
}

// TermsEquivalent reports whether a and b denote the same type once every
// resolved placeholder is substituted. Unresolved placeholders compare by
// identity.
func (s *Store) TermsEquivalent(a, b Term) bool {
	return Equal(s.Apply(a), s.Apply(b))
}

// Snapshot captures the current bindings in O(1).
type Snapshot struct {
	bindings *immutable.Map[PlaceholderID, Term]
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{bindings: s.bindings}
}

// Restore rewinds bindings to a previous snapshot. Allocations are kept:
// ids handed out since the snapshot stay burned, preserving the
// no-reuse-within-a-session invariant.
func (s *Store) Restore(snap Snapshot) {
	s.bindings = snap.bindings
}
