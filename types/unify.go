package types

import (
	"log/slog"

	"github.com/monolang/mono/typerr"
)

// Unifier equates type terms by resolving placeholders in its Store.
type Unifier struct {
	store  *Store
	logger *slog.Logger
}

func NewUnifier(store *Store) *Unifier {
	return &Unifier{
		store:  store,
		logger: slog.Default().With("section", "unify"),
	}
}

func (u *Unifier) Store() *Store { return u.store }

// Unify makes a and b equal by resolving placeholders, or reports why it
// cannot. Placeholders resolve left to right, but the outcome (success or
// failure, and the final bindings up to which side's placeholder got bound)
// does not depend on argument order.
func (u *Unifier) Unify(a, b Term) error {
	a, b = u.store.deref(a), u.store.deref(b)

	if pa, aIsPlaceholder := a.(Placeholder); aIsPlaceholder {
		if pb, bIsPlaceholder := b.(Placeholder); bIsPlaceholder && pa.id == pb.id {
			// same unresolved placeholder on both sides
			return nil
		}
		return u.store.Resolve(pa.id, b)
	}
	if pb, bIsPlaceholder := b.(Placeholder); bIsPlaceholder {
		return u.store.Resolve(pb.id, a)
	}

	ca, aIsConcrete := a.(Concrete)
	cb, bIsConcrete := b.(Concrete)
	if !aIsConcrete || !bIsConcrete {
		// a rest wildcard reaching here sits outside a trailing argument
		// position and never unifies on its own
		return typerr.New(typerr.NewUnificationMismatch{First: a, Second: b})
	}
	if ca.name != cb.name {
		u.logger.Debug("name conflict", "left", ca.name, "right", cb.name)
		return typerr.New(typerr.NewUnificationMismatch{First: ca, Second: cb})
	}
	return u.unifyArgs(ca, cb)
}

// unifyArgs unifies two argument lists pairwise. A trailing rest wildcard on
// either side absorbs the remaining suffix of the other side as-is, with no
// recursion into the absorbed arguments.
func (u *Unifier) unifyArgs(a, b Concrete) error {
	prefixA, restA := splitRest(a.args)
	prefixB, restB := splitRest(b.args)

	var n int
	switch {
	case restA && restB:
		n = min(len(prefixA), len(prefixB))
	case restA:
		if len(prefixA) > len(prefixB) {
			return typerr.New(typerr.NewArityMismatch{Name: a.name, Want: len(prefixB), Got: len(prefixA)})
		}
		n = len(prefixA)
	case restB:
		if len(prefixB) > len(prefixA) {
			return typerr.New(typerr.NewArityMismatch{Name: a.name, Want: len(prefixA), Got: len(prefixB)})
		}
		n = len(prefixB)
	default:
		if len(prefixA) != len(prefixB) {
			return typerr.New(typerr.NewArityMismatch{Name: a.name, Want: len(prefixA), Got: len(prefixB)})
		}
		n = len(prefixA)
	}

	for i := 0; i < n; i++ {
		if err := u.Unify(prefixA[i], prefixB[i]); err != nil {
			return err
		}
	}
	return nil
}

// splitRest strips a trailing rest wildcard off args, reporting whether one
// was present.
func splitRest(args []Term) ([]Term, bool) {
	if endsInRest(args) {
		return args[:len(args)-1], true
	}
	return args, false
}

// TryUnify unifies speculatively: on failure, any bindings made along the
// way are rolled back and the error is returned.
func (u *Unifier) TryUnify(a, b Term) error {
	snap := u.store.Snapshot()
	if err := u.Unify(a, b); err != nil {
		u.store.Restore(snap)
		return err
	}
	return nil
}

// CanUnify reports whether a and b could be made equal, keeping none of the
// resolutions either way.
func (u *Unifier) CanUnify(a, b Term) bool {
	snap := u.store.Snapshot()
	err := u.Unify(a, b)
	u.store.Restore(snap)
	return err == nil
}
