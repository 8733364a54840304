package phoneword

import "strings"

const separator = '-'

type segment struct {
	text string
	word bool
}

// segments is the decomposition being built by the enumerator, kept as typed
// pieces until an entry is emitted.
type segments []segment

func (s *segments) push(text string, word bool) {
	*s = append(*s, segment{text: text, word: word})
}

func (s *segments) pop() {
	*s = (*s)[:len(*s)-1]
}

// render joins the pieces. A dash goes between a word and whatever follows
// or precedes it; digit literals run together.
func (s segments) render() string {
	var sb strings.Builder
	prevWord := false
	for _, seg := range s {
		if seg.text == "" {
			continue
		}
		if sb.Len() > 0 && (seg.word || prevWord) {
			sb.WriteByte(separator)
		}
		sb.WriteString(seg.text)
		prevWord = seg.word
	}
	return sb.String()
}
