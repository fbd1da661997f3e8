package util

import (
	"fmt"
	"strings"
)

// JoinString renders every element with its String method and joins the
// results with sep.
func JoinString[S fmt.Stringer](elems []S, sep string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}
