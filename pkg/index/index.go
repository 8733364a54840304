// Package index maps keypad digit strings back to the dictionary words they
// spell, for exact lookups and T9 style completion.
package index

import (
	"slices"
	"strings"

	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is a word whose digits start with a looked up prefix.
type Suggestion struct {
	Word   string
	Digits string
}

// Index is a patricia trie keyed by digit encoding. Items are the words
// sharing that encoding, in insertion order. A word whose letters sit on
// several keys is stored under each of its encodings.
type Index struct {
	trie  *patricia.Trie
	words int
}

// Build indexes words under keys. Words containing a letter that is on no
// key are skipped.
func Build(words []string, keys keypad.Map) *Index {
	idx := &Index{trie: patricia.NewTrie()}
	for _, w := range words {
		idx.Add(w, keys)
	}
	return idx
}

// Add indexes a single word under every digit string that spells it. It
// reports whether the word was stored under any new key.
func (idx *Index) Add(word string, keys keypad.Map) bool {
	word = strings.ToUpper(word)
	stored := false
	for _, digits := range keys.Encodings(word) {
		key := patricia.Prefix(digits)
		if item := idx.trie.Get(key); item != nil {
			list := item.([]string)
			if slices.Contains(list, word) {
				continue
			}
			idx.trie.Set(key, append(list, word))
		} else {
			idx.trie.Insert(key, []string{word})
		}
		stored = true
	}
	if stored {
		idx.words++
	}
	return stored
}

// Words returns the words spelled exactly by digits.
func (idx *Index) Words(digits string) []string {
	if digits == "" {
		return nil
	}
	item := idx.trie.Get(patricia.Prefix(digits))
	if item == nil {
		return nil
	}
	return slices.Clone(item.([]string))
}

// Complete returns words whose encoding starts with prefix, shortest first
// and then alphabetical. A limit of zero or less returns everything.
func (idx *Index) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return nil
	}

	var out []Suggestion
	at := make(map[string]int)
	err := idx.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		digits := string(p)
		for _, w := range item.([]string) {
			// one suggestion per word, under its lowest encoding
			if i, ok := at[w]; ok {
				if digits < out[i].Digits {
					out[i].Digits = digits
				}
				continue
			}
			at[w] = len(out)
			out = append(out, Suggestion{Word: w, Digits: digits})
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
		return nil
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if len(a.Word) != len(b.Word) {
			return len(a.Word) - len(b.Word)
		}
		return strings.Compare(a.Word, b.Word)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return idx.words
}
