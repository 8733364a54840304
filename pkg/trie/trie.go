/*
Package trie stores the dictionary as a prefix tree that can be walked one
symbol at a time.

Nodes live in a flat arena and are addressed by Node handles. Every node
keeps the handle of its parent so the word ending at any node can be rebuilt
by walking up to the root, which is what the decomposition grid relies on:
it only carries nodes around, never strings.

	t := trie.New()
	t.Insert("CAT")
	n, _ := t.Follow(trie.Root, 'C')
	n, _ = t.Follow(n, 'A')
	n, _ = t.Follow(n, 'T')
	t.IsWord(n)  // true
	t.WordAt(n)  // "CAT"

The accepted alphabet is the digits and the uppercase letters. Anything else
ends a word during insertion and fails a traversal.
*/
package trie

import (
	"errors"
	"fmt"
)

// Node is a handle to a trie node.
type Node int32

const (
	// Root is the handle of the root node of every trie.
	Root Node = 0
	// None is returned when a traversal has no continuation.
	None Node = -1
)

// children are indexed by symbol - '0', covering '0'..'Z'.
const alphabetSize = 'Z' - '0' + 1

// ErrNodeLimit is returned when an insertion would grow the trie past the
// configured maximum node count.
var ErrNodeLimit = errors.New("trie node limit reached")

type node struct {
	symbol   byte
	end      bool
	parent   Node
	children [alphabetSize]Node
}

// Trie is a parent-linked prefix tree. It is not safe for concurrent
// insertion, but any number of goroutines may traverse a trie that is no
// longer being modified.
type Trie struct {
	nodes    []node
	words    int
	maxNodes int
}

// Option configures a Trie.
type Option func(*Trie)

// WithMaxNodes caps the number of nodes, root included. Zero means no cap.
func WithMaxNodes(n int) Option {
	return func(t *Trie) {
		t.maxNodes = n
	}
}

// New creates an empty trie holding only the root.
func New(opts ...Option) *Trie {
	t := &Trie{}
	for _, opt := range opts {
		opt(t)
	}
	t.nodes = append(t.nodes, newNode(0, None))
	return t
}

func newNode(symbol byte, parent Node) node {
	n := node{symbol: symbol, parent: parent}
	for i := range n.children {
		n.children[i] = None
	}
	return n
}

// Accepts reports whether c belongs to the trie alphabet.
func Accepts(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}

// Insert adds word to the trie. The word ends at the first symbol outside
// the alphabet, so "DON'T" stores "DON". An empty effective word is ignored.
func (t *Trie) Insert(word string) error {
	if t.nodes == nil {
		t.nodes = append(t.nodes, newNode(0, None))
	}

	cur := Root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !Accepts(c) {
			break
		}
		next := t.nodes[cur].children[c-'0']
		if next == None {
			if t.maxNodes > 0 && len(t.nodes) >= t.maxNodes {
				return fmt.Errorf("inserting %q: %w (%d nodes)", word, ErrNodeLimit, len(t.nodes))
			}
			next = Node(len(t.nodes))
			t.nodes = append(t.nodes, newNode(c, cur))
			t.nodes[cur].children[c-'0'] = next
		}
		cur = next
	}

	if cur == Root || t.nodes[cur].end {
		return nil
	}
	t.nodes[cur].end = true
	t.words++
	return nil
}

// Follow returns the child of n reached through symbol c.
func (t *Trie) Follow(n Node, c byte) (Node, bool) {
	if !t.valid(n) || !Accepts(c) {
		return None, false
	}
	next := t.nodes[n].children[c-'0']
	if next == None {
		return None, false
	}
	return next, true
}

// Walk follows every symbol of s starting at the root.
func (t *Trie) Walk(s string) (Node, bool) {
	cur := Root
	for i := 0; i < len(s); i++ {
		next, ok := t.Follow(cur, s[i])
		if !ok {
			return None, false
		}
		cur = next
	}
	return cur, t.valid(cur)
}

// IsWord reports whether a dictionary word ends at n.
func (t *Trie) IsWord(n Node) bool {
	return t.valid(n) && t.nodes[n].end
}

// WordAt rebuilds the word spelled by the path from the root to n.
// The root, and any invalid handle, yields "".
func (t *Trie) WordAt(n Node) string {
	if !t.valid(n) {
		return ""
	}

	var buf [32]byte
	word := buf[:0]
	for cur := n; cur != Root; cur = t.nodes[cur].parent {
		word = append(word, t.nodes[cur].symbol)
	}
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		word[i], word[j] = word[j], word[i]
	}
	return string(word)
}

// NodeCount returns the number of live nodes, root included.
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}

// WordCount returns the number of distinct words stored.
func (t *Trie) WordCount() int {
	return t.words
}

// Destroy releases every node. The node count drops to zero and all
// handles become invalid; a following Insert starts a fresh tree.
func (t *Trie) Destroy() {
	t.nodes = nil
	t.words = 0
}

func (t *Trie) valid(n Node) bool {
	return n >= 0 && int(n) < len(t.nodes)
}
