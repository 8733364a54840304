// Package keypad maps telephone digits to the letters printed on their keys.
package keypad

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidDigit is returned for a remap key outside '0'..'9'.
	ErrInvalidDigit = errors.New("invalid keypad digit")
	// ErrInvalidLetters is returned when a remap contains a non-letter.
	ErrInvalidLetters = errors.New("invalid keypad letters")
)

// Map holds, for every digit, the ordered letters it can stand for.
// The zero value maps every digit to no letters.
type Map [10]string

var standard = Map{
	"",
	"",
	"ABC",
	"DEF",
	"GHI",
	"JKL",
	"MNO",
	"PQRS",
	"TUV",
	"WXYZ",
}

// Default returns the standard telephone layout. 0 and 1 carry no letters.
func Default() Map {
	return standard
}

// New returns the default layout with the given digits remapped.
// Letters are upper-cased; an empty string removes every letter from a digit.
func New(overrides map[byte]string) (Map, error) {
	m := Default()
	for digit, letters := range overrides {
		if err := m.Set(digit, letters); err != nil {
			return Map{}, err
		}
	}
	return m, nil
}

// Set remaps a single digit.
func (m *Map) Set(digit byte, letters string) error {
	if digit < '0' || digit > '9' {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, digit)
	}
	letters = strings.ToUpper(letters)
	for i := 0; i < len(letters); i++ {
		if letters[i] < 'A' || letters[i] > 'Z' {
			return fmt.Errorf("%w: %q for digit %c", ErrInvalidLetters, letters, digit)
		}
	}
	m[digit-'0'] = dedupeLetters(letters)
	return nil
}

// ParseOverrides converts remaps keyed by digit strings, as found in the
// [keypad] config section and msgpack requests, into digit bytes. Keys must
// be single digits; letters are checked later by Set.
func ParseOverrides(remaps map[string]string) (map[byte]string, error) {
	keys := make([]string, 0, len(remaps))
	for key := range remaps {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make(map[byte]string, len(remaps))
	for _, key := range keys {
		if len(key) != 1 || key[0] < '0' || key[0] > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, key)
		}
		out[key[0]] = remaps[key]
	}
	return out, nil
}

// Letters returns the candidate letters of digit. Non-digits have none.
func (m Map) Letters(digit byte) string {
	if digit < '0' || digit > '9' {
		return ""
	}
	return m[digit-'0']
}

// Digit returns the digit whose key carries letter. When a remap puts the
// same letter on several keys the lowest digit wins.
func (m Map) Digit(letter byte) (byte, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for d, letters := range m {
		if strings.IndexByte(letters, letter) >= 0 {
			return byte('0' + d), true
		}
	}
	return 0, false
}

// Digits returns every digit whose key carries letter, lowest first.
func (m Map) Digits(letter byte) string {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	var out []byte
	for d, letters := range m {
		if strings.IndexByte(letters, letter) >= 0 {
			out = append(out, byte('0'+d))
		}
	}
	return string(out)
}

// Encodings returns every digit string that spells word, in ascending
// order. A layout that puts each letter on one key yields a single
// encoding. It returns nil if some letter is on no key.
func (m Map) Encodings(word string) []string {
	if word == "" {
		return nil
	}
	out := []string{""}
	for i := 0; i < len(word); i++ {
		digits := m.Digits(word[i])
		if digits == "" {
			return nil
		}
		next := make([]string, 0, len(out)*len(digits))
		for _, prefix := range out {
			for j := 0; j < len(digits); j++ {
				next = append(next, prefix+digits[j:j+1])
			}
		}
		out = next
	}
	return out
}

// Encode spells word as the digits one would dial for it.
// It fails if some letter is on no key.
func (m Map) Encode(word string) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(word))
	for i := 0; i < len(word); i++ {
		d, ok := m.Digit(word[i])
		if !ok {
			return "", false
		}
		sb.WriteByte(d)
	}
	return sb.String(), true
}

// String renders the layout as "2=ABC 3=DEF ...", skipping empty keys.
func (m Map) String() string {
	parts := make([]string, 0, len(m))
	for d, letters := range m {
		if letters == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d=%s", d, letters))
	}
	return strings.Join(parts, " ")
}

func dedupeLetters(letters string) string {
	var seen [26]bool
	out := make([]byte, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if seen[c-'A'] {
			continue
		}
		seen[c-'A'] = true
		out = append(out, c)
	}
	return string(out)
}
