package types_test

import (
	"testing"

	"github.com/monolang/mono/typerr"
	"github.com/monolang/mono/types"
	"github.com/stretchr/testify/assert"
)

func intT() types.Concrete    { return types.NewConcrete("Int") }
func stringT() types.Concrete { return types.NewConcrete("String") }
func boolT() types.Concrete   { return types.NewConcrete("Bool") }

func TestConcreteString(t *testing.T) {
	store := types.NewStore()
	p := store.Allocate()
	term := types.NewConcrete("Map", stringT(), p)
	assert.Equal(t, "Map<String, _0>", term.String())
	assert.Equal(t, "Int", intT().String())
}

func TestPlaceholderString(t *testing.T) {
	store := types.NewStore()
	p := store.Allocate()
	assert.Contains(t, p.String(), "0")
	assert.Contains(t, p.String(), "_")
}

func TestRestString(t *testing.T) {
	assert.Equal(t, "...", types.RestArg.String())
}

func TestEqualStructural(t *testing.T) {
	a := types.NewConcrete("Map", stringT(), intT())
	b := types.NewConcrete("Map", stringT(), intT())
	c := types.NewConcrete("Map", intT(), stringT())
	assert.True(t, types.Equal(a, b))
	assert.False(t, types.Equal(a, c))
	assert.False(t, types.Equal(a, intT()))
}

func TestEqualPlaceholderByIdentity(t *testing.T) {
	store := types.NewStore()
	p0 := store.Allocate()
	p1 := store.Allocate()
	assert.True(t, types.Equal(p0, p0))
	assert.False(t, types.Equal(p0, p1))
}

func TestInstantiateArity(t *testing.T) {
	env := types.NewEnv()

	_, err := env.Instantiate("Map", stringT(), intT())
	assert.NoError(t, err)

	_, err = env.Instantiate("Map", stringT())
	assert.Equal(t, typerr.Arity, typerr.CodeOf(err))

	_, err = env.Instantiate("Map", stringT(), intT(), boolT())
	assert.Equal(t, typerr.Arity, typerr.CodeOf(err))
}

func TestInstantiateTrailingRest(t *testing.T) {
	env := types.NewEnv()

	// a trailing rest matches any number of remaining expected arguments
	_, err := env.Instantiate("Map", types.RestArg)
	assert.NoError(t, err)

	_, err = env.Instantiate("Map", stringT(), types.RestArg)
	assert.NoError(t, err)

	_, err = env.Instantiate("Map", stringT(), intT(), boolT(), types.RestArg)
	assert.Equal(t, typerr.Arity, typerr.CodeOf(err))
}

func TestInstantiateMisplacedRest(t *testing.T) {
	env := types.NewEnv()
	_, err := env.Instantiate("Map", types.RestArg, intT())
	assert.Equal(t, typerr.MisplacedRest, typerr.CodeOf(err))
}

func TestInstantiateVariadicAndUnknownNames(t *testing.T) {
	env := types.NewEnv()

	_, err := env.Instantiate("Fn", intT(), intT(), boolT())
	assert.NoError(t, err)

	// undeclared names are accepted with any argument count
	_, err = env.Instantiate("Promise", intT())
	assert.NoError(t, err)

	env.Declare("Promise", 0)
	_, err = env.Instantiate("Promise", intT())
	assert.Equal(t, typerr.Arity, typerr.CodeOf(err))
}

func TestPlaceholderIDs(t *testing.T) {
	store := types.NewStore()
	p0 := store.Allocate()
	p1 := store.Allocate()
	term := types.NewConcrete("Map",
		types.NewConcrete("Array", p1),
		types.NewConcrete("Map", p0, p1),
	)
	assert.Equal(t, []types.PlaceholderID{0, 1}, types.PlaceholderIDs(term))
	assert.Empty(t, types.PlaceholderIDs(intT()))
}
