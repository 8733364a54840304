package utils

import (
	"strings"
)

// SeenFilter drops repeated strings, ignoring case.
type SeenFilter struct {
	seen map[string]struct{}
}

// NewSeenFilter creates a filter that has seen nothing yet. Any strings
// passed in are treated as already seen.
func NewSeenFilter(exclude ...string) *SeenFilter {
	f := &SeenFilter{seen: make(map[string]struct{}, len(exclude))}
	for _, s := range exclude {
		f.seen[strings.ToUpper(s)] = struct{}{}
	}
	return f
}

// ShouldInclude reports whether s is new, and remembers it.
func (f *SeenFilter) ShouldInclude(s string) bool {
	key := strings.ToUpper(s)
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}
	return true
}

// Len returns how many distinct strings were seen.
func (f *SeenFilter) Len() int {
	return len(f.seen)
}
