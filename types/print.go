package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe renders term for user-facing diagnostics, dereferencing resolved
// placeholders transparently. An unresolved placeholder renders as
// Unknown<id>, so two distinct unknowns stay distinguishable in the same
// message.
func (s *Store) Describe(term Term) string {
	switch term := term.(type) {
	case Placeholder:
		bound, ok := s.Lookup(term.id)
		if !ok {
			return describeUnknown(term.id)
		}
		if p, still := bound.(Placeholder); still {
			return describeUnknown(p.id)
		}
		return s.Describe(bound)
	case Concrete:
		if len(term.args) == 0 {
			return term.name
		}
		parts := make([]string, len(term.args))
		for i, arg := range term.args {
			parts[i] = s.Describe(arg)
		}
		return fmt.Sprintf("%s<%s>", term.name, strings.Join(parts, ", "))
	default:
		return term.String()
	}
}

func describeUnknown(id PlaceholderID) string {
	return "Unknown<" + strconv.FormatUint(id, 10) + ">"
}
