package phoneword

import (
	"cmp"
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is one full decomposition of a number.
type Entry struct {
	Text  string
	Score int
}

// Order selects how entries are sorted.
type Order int

const (
	// Ascending puts the lowest scores first.
	Ascending Order = iota
	// Descending puts the highest scores first.
	Descending
)

// Collector keeps the first entry seen for every distinct text.
type Collector struct {
	seen *patricia.Trie
	// patricia keys must not be empty, the empty number is tracked here
	seenEmpty bool
	entries   []Entry
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: patricia.NewTrie()}
}

// Add records e unless an entry with the same text is already held.
// It reports whether e was kept.
func (c *Collector) Add(e Entry) bool {
	if e.Text == "" {
		if c.seenEmpty {
			return false
		}
		c.seenEmpty = true
	} else if !c.seen.Insert(patricia.Prefix(e.Text), len(c.entries)) {
		return false
	}
	c.entries = append(c.entries, e)
	return true
}

// Len returns the number of entries kept.
func (c *Collector) Len() int {
	return len(c.entries)
}

// Entries returns the kept entries sorted by score, ties broken by text.
// Descending is the exact reverse of Ascending.
func (c *Collector) Entries(order Order) []Entry {
	out := slices.Clone(c.entries)
	slices.SortFunc(out, compareEntries)
	if order == Descending {
		slices.Reverse(out)
	}
	return out
}

func compareEntries(a, b Entry) int {
	if n := cmp.Compare(a.Score, b.Score); n != 0 {
		return n
	}
	return cmp.Compare(a.Text, b.Text)
}
