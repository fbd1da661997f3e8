package types

import (
	"fmt"
	"hash/fnv"
	"iter"
	"slices"
	"strconv"

	"github.com/monolang/mono/util"
)

// PlaceholderID identifies a placeholder within a single Store.
type PlaceholderID = uint64

// Term is a type expression: a named type constructor applied to zero or
// more argument terms, a placeholder standing for a not-yet-determined type,
// or the trailing rest wildcard.
//
// Equal can be used to compare Term instances; each variant interprets its
// own equality through Hash.
type Term interface {
	fmt.Stringer
	Hash() uint64
	Children() iter.Seq[Term]
	doMap(func(Term) Term) Term
}

var (
	_ Term = Concrete{}
	_ Term = Placeholder{}
	_ Term = Rest{}
)

var emptySeqTerm iter.Seq[Term] = func(func(Term) bool) {}

// Equal compares two terms structurally. Placeholders compare by identity;
// resolution state never participates, since it lives in the Store.
func Equal(this, other Term) bool {
	return this.Hash() == other.Hash()
}

// Concrete is a named type constructor applied to an ordered argument list,
// such as Int (no arguments) or Map<String, Int>.
type Concrete struct {
	name string
	args []Term
}

// NewConcrete builds a concrete term without consulting declared arities.
// Env.Instantiate is the arity-checked constructor.
func NewConcrete(name string, args ...Term) Concrete {
	return Concrete{name: name, args: args}
}

func (t Concrete) Name() string { return t.name }

// Args returns a copy of the argument list.
func (t Concrete) Args() []Term { return slices.Clone(t.args) }

func (t Concrete) String() string {
	if len(t.args) == 0 {
		return t.name
	}
	return fmt.Sprintf("%s<%s>", t.name, util.JoinString(t.args, ", "))
}

func (t Concrete) Children() iter.Seq[Term] { return slices.Values(t.args) }

func (t Concrete) doMap(f func(Term) Term) Term {
	mapped := make([]Term, len(t.args))
	for i, arg := range t.args {
		mapped[i] = f(arg)
	}
	return Concrete{name: t.name, args: mapped}
}

func (t Concrete) Hash() uint64 {
	const prime uint64 = 14695981039346656037
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.name))
	hash := prime
	for _, arg := range t.args {
		hash = hash*31 + arg.Hash()
	}
	return h.Sum64() ^ hash
}

// Placeholder stands for a type that is not known yet (the proposal's
// "monomorph"). It carries only an identity; whether it is resolved, and to
// what, is recorded in the Store that allocated it.
//
// Construct with Store.Allocate.
type Placeholder struct {
	id PlaceholderID
}

func (t Placeholder) ID() PlaceholderID { return t.id }

func (t Placeholder) String() string {
	return "_" + strconv.FormatUint(t.id, 10)
}

func (t Placeholder) Children() iter.Seq[Term]   { return emptySeqTerm }
func (t Placeholder) doMap(func(Term) Term) Term { return t }

func (t Placeholder) Hash() uint64 {
	const prime1 uint64 = 31
	const prime2 uint64 = 7919
	return prime1 * prime2 * (t.id + 1)
}

// Rest is the trailing wildcard in an argument list. During unification it
// matches the entire remaining suffix of the other side's arguments, which
// is accepted as-is. It may only appear as the last argument of a Concrete.
type Rest struct{}

// RestArg is the canonical Rest value.
var RestArg = Rest{}

func (Rest) String() string          { return "..." }
func (Rest) Children() iter.Seq[Term] { return emptySeqTerm }
func (t Rest) doMap(func(Term) Term) Term { return t }

func (Rest) Hash() uint64 {
	const prime uint64 = 104729
	return prime
}
