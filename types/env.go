package types

import (
	"github.com/monolang/mono/typerr"
)

// Variadic marks a type name whose argument count is not checked.
const Variadic = -1

// Env records the declared arity of each known type name. It plays the role
// the type-definition table plays in a full checker: arity is fixed per
// name, and construction is checked against it.
//
// Names that were never declared are accepted with any argument count.
type Env struct {
	arities map[string]int
}

// universe are the built-in type constructors
func universe() map[string]int {
	return map[string]int{
		"Int":    0,
		"String": 0,
		"Bool":   0,
		"Array":  1,
		"Map":    2,
		"Fn":     Variadic,
	}
}

func NewEnv() *Env {
	return &Env{arities: universe()}
}

// Declare registers name with the given arity, overwriting any previous
// declaration.
func (e *Env) Declare(name string, arity int) {
	e.arities[name] = arity
}

// Arity returns the declared arity for name, if any.
func (e *Env) Arity(name string) (int, bool) {
	arity, ok := e.arities[name]
	return arity, ok
}

// Instantiate builds a Concrete term for name, checking the supplied
// argument count against the declared arity. A single trailing Rest stands
// for zero or more of the remaining expected arguments; a Rest anywhere else
// fails with MisplacedRest.
func (e *Env) Instantiate(name string, args ...Term) (Concrete, error) {
	for i, arg := range args {
		if _, isRest := arg.(Rest); isRest && i != len(args)-1 {
			return Concrete{}, typerr.New(typerr.NewMisplacedRest{Name: name, Position: i})
		}
	}
	want, known := e.arities[name]
	if !known || want == Variadic {
		return NewConcrete(name, args...), nil
	}
	if endsInRest(args) {
		if got := len(args) - 1; got > want {
			return Concrete{}, typerr.New(typerr.NewArityMismatch{Name: name, Want: want, Got: got})
		}
		return NewConcrete(name, args...), nil
	}
	if len(args) != want {
		return Concrete{}, typerr.New(typerr.NewArityMismatch{Name: name, Want: want, Got: len(args)})
	}
	return NewConcrete(name, args...), nil
}

func endsInRest(args []Term) bool {
	if len(args) == 0 {
		return false
	}
	_, ok := args[len(args)-1].(Rest)
	return ok
}
