// Package filter narrows billboard, catalog and theatre lists by the
// selections made on a page.  Every function is pure.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// All is the selection that disables a filter dimension.
const All = "all"

// IsAll reports whether a selection means "no filter".  The Spanish
// "todos" used by the site's selects is accepted as well.
func IsAll(sel string) bool {
	s := strings.TrimSpace(strings.ToLower(sel))
	return s == "" || s == All || s == "todos"
}

// containsFold reports whether needle occurs in haystack ignoring case.
// A Caser holds state, so each call gets its own.
func containsFold(haystack, needle string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}
