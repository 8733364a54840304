package phoneword

import (
	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/bastiangx/spellophone/pkg/trie"
)

// Cell is one square of the grid: every trie walk that is still alive after
// reading length digits from a start position, and the walks among them that
// sit on a complete word.
type Cell struct {
	Partial   []trie.Node
	Completed []trie.Node
}

// Table is the dynamic-programming grid for one number. Column s holds the
// cells for words starting at digit s, indexed by length 0..N-s.
type Table struct {
	number  string
	columns [][]Cell
}

// BuildTable fills the grid for number. Each cell of length k extends the
// partial walks of length k-1 from the same start with every letter of the
// next digit, so no walk is ever restarted from the root.
func BuildTable(number string, t *trie.Trie, keys keypad.Map) *Table {
	n := len(number)
	table := &Table{
		number:  number,
		columns: make([][]Cell, n),
	}
	for start := 0; start < n; start++ {
		table.columns[start] = buildColumn(number, start, t, keys)
	}
	return table
}

func buildColumn(number string, start int, t *trie.Trie, keys keypad.Map) []Cell {
	maxLength := len(number) - start
	column := make([]Cell, maxLength+1)
	column[0].Partial = []trie.Node{trie.Root}

	for length := 1; length <= maxLength; length++ {
		prev := column[length-1].Partial
		if len(prev) == 0 {
			// nothing left to extend, the remaining cells stay empty
			break
		}

		letters := keys.Letters(number[start+length-1])
		cell := &column[length]
		for _, state := range prev {
			for i := 0; i < len(letters); i++ {
				next, ok := t.Follow(state, letters[i])
				if !ok {
					continue
				}
				cell.Partial = append(cell.Partial, next)
				if t.IsWord(next) {
					cell.Completed = append(cell.Completed, next)
				}
			}
		}
	}
	return column
}

// Number returns the digits the table was built for.
func (tb *Table) Number() string {
	return tb.number
}

// Len returns the number of digits, which is also the number of columns.
func (tb *Table) Len() int {
	return len(tb.columns)
}

// Cell returns the cell for words of length digits starting at start.
// Out of range coordinates yield an empty cell.
func (tb *Table) Cell(start, length int) Cell {
	if start < 0 || start >= len(tb.columns) {
		return Cell{}
	}
	column := tb.columns[start]
	if length < 0 || length >= len(column) {
		return Cell{}
	}
	return column[length]
}

// States counts the partial walks held by the whole grid.
func (tb *Table) States() int {
	total := 0
	for _, column := range tb.columns {
		for _, cell := range column {
			total += len(cell.Partial)
		}
	}
	return total
}
