package types

import (
	"sort"

	"github.com/xtgo/set"
)

type idSlice []PlaceholderID

func (s idSlice) Len() int           { return len(s) }
func (s idSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s idSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// PlaceholderIDs collects the id of every placeholder occurring in term,
// sorted and deduplicated. It does not look through store bindings; callers
// that want the ids of a fully substituted term should Apply first.
func PlaceholderIDs(term Term) []PlaceholderID {
	var ids idSlice
	var walk func(Term)
	walk = func(t Term) {
		if p, isPlaceholder := t.(Placeholder); isPlaceholder {
			ids = append(ids, p.id)
			return
		}
		for child := range t.Children() {
			walk(child)
		}
	}
	walk(term)
	sort.Sort(ids)
	n := set.Uniq(ids)
	return ids[:n]
}
