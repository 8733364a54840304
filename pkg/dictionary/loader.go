/*
Package dictionary reads word lists into the normalized, filtered form the
decomposition engine expects.

Plain text lists carry one word per line, like the system lists found under
/usr/share/dict. Every line is normalized with NormalizeWord, filtered by
length and deduplicated. Compiled lists (see Save) hold words that went
through the same steps already; they are only checked to be upper-case A to Z
before loading.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/spellophone/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultPaths are the system word lists tried, in order, when no
// dictionary file is given.
var DefaultPaths = []string{
	"/etc/dictionaries-common/words",
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// MinWordLength is the shortest word kept unless Options say otherwise.
const MinWordLength = 2

// ErrNoDictionary is returned when none of the default lists can be opened.
var ErrNoDictionary = errors.New("could not open dictionary file")

// Options filters the loaded words. MaxLength of zero keeps any length.
type Options struct {
	MinLength int
	MaxLength int
}

// Stats describes what a Loader has read so far.
type Stats struct {
	Files      []string
	Lines      int
	Words      int
	Rejected   int
	Filtered   int
	Duplicates int
}

// Loader accumulates words from any number of files.
type Loader struct {
	opts  Options
	seen  *utils.SeenFilter
	words []string
	stats Stats
}

// NewLoader creates a loader applying opts to every file.
func NewLoader(opts Options) *Loader {
	if opts.MinLength <= 0 {
		opts.MinLength = MinWordLength
	}
	return &Loader{
		opts: opts,
		seen: utils.NewSeenFilter(),
	}
}

// LoadFiles is a shortcut to load several files with one loader.
func LoadFiles(paths []string, opts Options) ([]string, Stats, error) {
	l := NewLoader(opts)
	for _, path := range paths {
		if _, err := l.LoadFile(path); err != nil {
			return nil, l.Stats(), err
		}
	}
	return l.Words(), l.Stats(), nil
}

// LoadFile reads a text or compiled dictionary and returns how many new
// words it contributed.
func (l *Loader) LoadFile(path string) (int, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var added int
	switch format {
	case FormatCompiled:
		added, err = l.loadCompiled(bufio.NewReader(file))
	default:
		added, err = l.LoadReader(file)
	}
	if err != nil {
		return added, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	l.stats.Files = append(l.stats.Files, path)
	log.Debugf("Loaded %d words from %s", added, path)
	return added, nil
}

// LoadDefault loads the first of paths that can be opened and returns it.
func (l *Loader) LoadDefault(paths []string) (string, int, error) {
	for _, path := range paths {
		if !utils.FileExists(path) {
			log.Debugf("Default dictionary candidate missing: %s", path)
			continue
		}
		added, err := l.LoadFile(path)
		if err != nil {
			log.Warnf("Skipping default dictionary %s: %v", path, err)
			continue
		}
		return path, added, nil
	}
	return "", 0, fmt.Errorf("%w: tried %v", ErrNoDictionary, paths)
}

// LoadReader reads a text word list, one word per line.
func (l *Loader) LoadReader(r io.Reader) (int, error) {
	added := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l.stats.Lines++
		word, ok := NormalizeWord(scanner.Text())
		if !ok {
			l.stats.Rejected++
			continue
		}
		if l.add(word) {
			added++
		}
	}
	return added, scanner.Err()
}

func (l *Loader) loadCompiled(r io.Reader) (int, error) {
	words, err := ReadCompiled(r)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, word := range words {
		l.stats.Lines++
		if !isUpperWord(word) {
			log.Debugf("Rejected compiled entry %q", word)
			l.stats.Rejected++
			continue
		}
		if l.add(word) {
			added++
		}
	}
	return added, nil
}

func (l *Loader) add(word string) bool {
	if len(word) < l.opts.MinLength || (l.opts.MaxLength > 0 && len(word) > l.opts.MaxLength) {
		l.stats.Filtered++
		return false
	}
	if !l.seen.ShouldInclude(word) {
		l.stats.Duplicates++
		return false
	}
	l.words = append(l.words, word)
	l.stats.Words++
	return true
}

// Words returns every word kept so far, in reading order.
func (l *Loader) Words() []string {
	return l.words
}

// Stats returns a snapshot of the loader counters.
func (l *Loader) Stats() Stats {
	stats := l.stats
	stats.Files = append([]string(nil), l.stats.Files...)
	return stats
}
