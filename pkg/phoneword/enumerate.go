package phoneword

import "github.com/bastiangx/spellophone/pkg/trie"

// enumerator walks a built table and feeds every full cover of the number
// into a collector.
type enumerator struct {
	table   *Table
	trie    *trie.Trie
	minWord int
	out     *Collector
	path    segments
}

// run enumerates the whole number. When no word fits anywhere the number is
// emitted once, all digits literal, with a zero score.
func (e *enumerator) run() int {
	added := e.walk(0, 0)
	if added == 0 {
		e.path = e.path[:0]
		e.path.push(e.table.Number(), false)
		if e.out.Add(Entry{Text: e.path.render(), Score: 0}) {
			added++
		}
		e.path.pop()
	}
	return added
}

// walk produces every decomposition of the digits from start on that uses at
// least one word, prefixed by the current path, and returns how many new
// entries reached the collector. Longest words are tried first.
func (e *enumerator) walk(start, score int) int {
	number := e.table.Number()
	remaining := len(number) - start
	if remaining < e.minWord {
		return 0
	}

	added := 0
	for length := remaining; length >= e.minWord; length-- {
		for _, state := range e.table.Cell(start, length).Completed {
			wordScore := score + length*length

			e.path.push(e.trie.WordAt(state), true)
			sub := e.walk(start+length, wordScore)
			if sub == 0 {
				// nothing after this word forms another word
				e.path.push(number[start+length:], false)
				if e.out.Add(Entry{Text: e.path.render(), Score: wordScore}) {
					sub++
				}
				e.path.pop()
			}
			e.path.pop()
			added += sub
		}
	}

	// Leave this digit literal and look for words further on. One skip per
	// call covers every later start position, so no tier repeats it.
	if remaining-1 >= e.minWord {
		e.path.push(number[start:start+1], false)
		added += e.walk(start+1, score)
		e.path.pop()
	}
	return added
}
