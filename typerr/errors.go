package typerr

import (
	"fmt"
)

// NewArityMismatch reports a wrong number of type arguments for a named
// concrete type, either at construction time or between two terms during
// unification.
type NewArityMismatch struct {
	Name  string
	Want  int
	Got   int
	stack []byte
}

func (e NewArityMismatch) Code() ErrCode { return Arity }
func (e NewArityMismatch) Error() string {
	plural := "s"
	if e.Want == 1 {
		plural = ""
	}
	return fmt.Sprintf("type '%s' expects %d type argument%s, got %d", e.Name, e.Want, plural, e.Got)
}
func (e NewArityMismatch) getStack() []byte { return e.stack }
func (e NewArityMismatch) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewAlreadyResolved reports an attempt to re-bind a placeholder that
// already has a binding. Bindings are monotonic.
type NewAlreadyResolved struct {
	ID    uint64
	Bound Term
	stack []byte
}

func (e NewAlreadyResolved) Code() ErrCode { return AlreadyResolved }
func (e NewAlreadyResolved) Error() string {
	return fmt.Sprintf("placeholder _%d is already resolved to '%s'", e.ID, e.Bound)
}
func (e NewAlreadyResolved) getStack() []byte { return e.stack }
func (e NewAlreadyResolved) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewOccursCheckFailed reports a binding that would make a placeholder
// contain itself, directly or through other bindings.
type NewOccursCheckFailed struct {
	ID    uint64
	In    Term
	stack []byte
}

func (e NewOccursCheckFailed) Code() ErrCode { return Occurs }
func (e NewOccursCheckFailed) Error() string {
	return fmt.Sprintf("cannot resolve placeholder _%d to '%s': the term reaches back to the placeholder itself", e.ID, e.In)
}
func (e NewOccursCheckFailed) getStack() []byte { return e.stack }
func (e NewOccursCheckFailed) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewUnificationMismatch reports a structural conflict between two concrete
// terms. Both terms are carried for diagnostics.
type NewUnificationMismatch struct {
	First  Term
	Second Term
	stack  []byte
}

func (e NewUnificationMismatch) Code() ErrCode { return UnifyConflict }
func (e NewUnificationMismatch) Error() string {
	return fmt.Sprintf("cannot unify '%s' with '%s'", e.First, e.Second)
}
func (e NewUnificationMismatch) getStack() []byte { return e.stack }
func (e NewUnificationMismatch) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewMisplacedRest reports a rest wildcard outside the last argument
// position of a concrete type.
type NewMisplacedRest struct {
	Name     string
	Position int
	stack    []byte
}

func (e NewMisplacedRest) Code() ErrCode { return MisplacedRest }
func (e NewMisplacedRest) Error() string {
	return fmt.Sprintf("rest wildcard '...' must be the last type argument of '%s' (found at position %d)", e.Name, e.Position)
}
func (e NewMisplacedRest) getStack() []byte { return e.stack }
func (e NewMisplacedRest) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

// NewParse reports a malformed type expression.
type NewParse struct {
	Src   string
	From  error
	stack []byte
}

func (e NewParse) Code() ErrCode { return Parse }
func (e NewParse) Error() string {
	return fmt.Sprintf("cannot parse type expression %q: %s", e.Src, e.From)
}
func (e NewParse) Unwrap() error    { return e.From }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) Error {
	e.stack = stack
	return e
}
