package mono_test

import (
	"testing"

	"github.com/monolang/mono/mono"
	"github.com/monolang/mono/typerr"
	"github.com/monolang/mono/types"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, session *mono.Session, src string) types.Term {
	t.Helper()
	term, err := session.ParseTerm(src)
	assert.NoError(t, err)
	return term
}

func TestSessionUnifyText(t *testing.T) {
	session := mono.NewSession()
	report, err := session.UnifyText("Map<_, _>", "Map<String, Int>")
	assert.NoError(t, err)

	assert.Equal(t, "Map<String, Int>", report.Applied)
	assert.Len(t, report.Bindings, 2)
	assert.Equal(t, uint64(0), report.Bindings[0].ID)
	assert.Equal(t, "String", report.Bindings[0].Term.String())
	assert.Equal(t, uint64(1), report.Bindings[1].ID)
	assert.Equal(t, "Int", report.Bindings[1].Term.String())
}

func TestSessionReportString(t *testing.T) {
	session := mono.NewSession()
	report, err := session.UnifyText("Array<_>", "Array<Int>")
	assert.NoError(t, err)
	assert.Contains(t, report.String(), "_0 := Int")
	assert.Contains(t, report.String(), "ok: Array<Int>")
}

func TestSessionRestWildcard(t *testing.T) {
	session := mono.NewSession()
	report, err := session.UnifyText("Map<...>", "Map<String, Int>")
	assert.NoError(t, err)
	assert.Empty(t, report.Bindings)
}

func TestSessionConflict(t *testing.T) {
	session := mono.NewSession()
	_, err := session.UnifyText("Array<Int>", "Array<String>")
	assert.Equal(t, typerr.UnifyConflict, typerr.CodeOf(err))
}

func TestSessionArityMismatch(t *testing.T) {
	session := mono.NewSession()
	_, err := session.UnifyText("Fn<Int>", "Fn<Int, Int>")
	assert.Equal(t, typerr.Arity, typerr.CodeOf(err))
}

func TestSessionParseErrorSurfaces(t *testing.T) {
	session := mono.NewSession()
	_, err := session.UnifyText("Map<", "Int")
	assert.Equal(t, typerr.Parse, typerr.CodeOf(err))
}

func TestSessionsAreIndependent(t *testing.T) {
	a := mono.NewSession()
	b := mono.NewSession()

	pa := mustParse(t, a, "_")
	pb := mustParse(t, b, "_")
	assert.Equal(t, "_0", pa.String())
	assert.Equal(t, "_0", pb.String())

	_, err := a.Unify(pa, mustParse(t, a, "Int"))
	assert.NoError(t, err)
	assert.True(t, a.Store.Resolved(0))
	assert.False(t, b.Store.Resolved(0))
}

func TestSessionChainedPlaceholders(t *testing.T) {
	session := mono.NewSession()
	report, err := session.UnifyText("Map<_, _>", "Map<_, Int>")
	assert.NoError(t, err)

	// _0 resolved to _2 (still unknown), _1 resolved to Int
	assert.Equal(t, "Map<Unknown<2>, Int>", report.Applied)
}
