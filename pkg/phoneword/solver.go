/*
Package phoneword finds the dictionary words hidden in phone numbers.

A Solver holds the dictionary trie and a keypad layout. For every number it
builds a grid of trie walks, one column per starting digit and one cell per
word length, then enumerates every way of covering the number with words and
literal digits:

	s, _ := phoneword.NewSolver([]string{"CAT", "CATS"})
	entries, _ := s.Solve("228-7")
	// CATS (16), CAT-7 (9)

Each entry is scored by summing the squared length of its words, so one long
word beats two short ones. Entries are unique by text.
*/
package phoneword

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/bastiangx/spellophone/pkg/trie"
	"github.com/charmbracelet/log"
)

const (
	// DefaultMinWordLength is the shortest span matched as a word.
	DefaultMinWordLength = 2
	// DefaultMinDigits and DefaultMaxDigits bound the numbers Solve accepts.
	DefaultMinDigits = 3
	DefaultMaxDigits = 10
)

var (
	// ErrInvalidNumber is returned when a number holds anything but digits.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNumberLength is returned when a number has too few or too many digits.
	ErrNumberLength = errors.New("number length out of range")
)

// Options tunes a Solver. Zero fields take the defaults.
type Options struct {
	MinWordLength int
	MinDigits     int
	MaxDigits     int
	// MaxNodes caps the dictionary trie, see trie.WithMaxNodes.
	MaxNodes int
	Keypad   *keypad.Map
	Logger   *log.Logger
}

// Solver decomposes numbers against a fixed dictionary. It is never modified
// after construction and can be shared between goroutines.
type Solver struct {
	trie    *trie.Trie
	keys    keypad.Map
	minWord int
	minLen  int
	maxLen  int
	logger  *log.Logger
}

// NewSolver builds the trie from words with default options.
func NewSolver(words []string) (*Solver, error) {
	return NewSolverWithOptions(words, Options{})
}

// NewSolverWithOptions builds the trie from words. Words are expected to be
// uppercase already; see the dictionary package for loading files.
func NewSolverWithOptions(words []string, opts Options) (*Solver, error) {
	var trieOpts []trie.Option
	if opts.MaxNodes > 0 {
		trieOpts = append(trieOpts, trie.WithMaxNodes(opts.MaxNodes))
	}
	t := trie.New(trieOpts...)
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			return nil, fmt.Errorf("building dictionary trie: %w", err)
		}
	}
	return NewSolverFromTrie(t, opts), nil
}

// NewSolverFromTrie wraps an already built trie. The trie must not be
// modified afterwards.
func NewSolverFromTrie(t *trie.Trie, opts Options) *Solver {
	s := &Solver{
		trie:    t,
		keys:    keypad.Default(),
		minWord: opts.MinWordLength,
		minLen:  opts.MinDigits,
		maxLen:  opts.MaxDigits,
		logger:  opts.Logger,
	}
	if opts.Keypad != nil {
		s.keys = *opts.Keypad
	}
	if s.minWord < 1 {
		s.minWord = DefaultMinWordLength
	}
	if s.minLen <= 0 {
		s.minLen = DefaultMinDigits
	}
	if s.maxLen <= 0 {
		s.maxLen = DefaultMaxDigits
	}
	return s
}

// WithKeypad returns a Solver sharing the dictionary but using keys.
func (s *Solver) WithKeypad(keys keypad.Map) *Solver {
	c := *s
	c.keys = keys
	return &c
}

// Keypad returns the layout in use.
func (s *Solver) Keypad() keypad.Map {
	return s.keys
}

// Trie returns the dictionary trie.
func (s *Solver) Trie() *trie.Trie {
	return s.trie
}

// Solve normalizes a number as typed by a user, checks its length and
// decomposes it, highest scores first.
func (s *Solver) Solve(raw string) ([]Entry, error) {
	number, err := s.Validate(raw)
	if err != nil {
		return nil, err
	}
	return s.decompose(number, Descending), nil
}

// Validate strips the usual phone number punctuation from raw and checks
// the digit count against the configured range.
func (s *Solver) Validate(raw string) (string, error) {
	number := Normalize(raw)
	if number == "" || !isDigits(number) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	if len(number) < s.minLen || len(number) > s.maxLen {
		return "", fmt.Errorf("%w: %q has %d digits, want %d to %d",
			ErrNumberLength, raw, len(number), s.minLen, s.maxLen)
	}
	return number, nil
}

// Decompose lists every decomposition of number in ascending score order.
// Any digit string is accepted, including short and empty ones; when no word
// fits the result is the number itself with a zero score.
func (s *Solver) Decompose(number string) ([]Entry, error) {
	if !isDigits(number) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return s.decompose(number, Ascending), nil
}

// DecomposeOrdered is Decompose with a chosen order.
func (s *Solver) DecomposeOrdered(number string, order Order) ([]Entry, error) {
	if !isDigits(number) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return s.decompose(number, order), nil
}

func (s *Solver) decompose(number string, order Order) []Entry {
	start := time.Now()

	table := BuildTable(number, s.trie, s.keys)
	out := NewCollector()
	e := &enumerator{
		table:   table,
		trie:    s.trie,
		minWord: s.minWord,
		out:     out,
	}
	e.run()

	if s.logger != nil {
		s.logger.Debug("decomposed",
			"number", number,
			"states", table.States(),
			"entries", out.Len(),
			"took", time.Since(start))
	}
	return out.Entries(order)
}

// Normalize drops the separators people put in phone numbers, such as
// spaces, dashes, dots and parentheses.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '.', '/', '(', ')', '+':
			return -1
		}
		return r
	}, raw)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
