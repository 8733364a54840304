package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWord turns a raw dictionary line into the uppercase form the trie
// stores. Accents are stripped ("café" becomes "CAFE") and a possessive or
// contraction is cut at the apostrophe ("cat's" becomes "CAT"). Words holding
// anything else than letters are rejected.
func NormalizeWord(raw string) (string, bool) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", false
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, word)
	if err != nil {
		return "", false
	}

	if i := strings.IndexAny(stripped, "'’"); i >= 0 {
		stripped = stripped[:i]
	}
	stripped = strings.ToUpper(stripped)

	if !isUpperWord(stripped) {
		return "", false
	}
	return stripped, true
}

// isUpperWord reports whether word is non-empty and only holds A to Z.
func isUpperWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}
