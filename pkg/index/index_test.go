package index

import (
	"testing"

	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	idx := Build([]string{"HOME", "GOOD", "gone", "HOOD", "IN", "GO", "DON'T"}, keypad.Default())

	assert.Equal(t, 6, idx.Len(), "DON'T has no encoding")
	assert.ElementsMatch(t, []string{"HOME", "GOOD", "GONE", "HOOD"}, idx.Words("4663"))
	assert.ElementsMatch(t, []string{"IN", "GO"}, idx.Words("46"))
	assert.Empty(t, idx.Words("466"))
	assert.Empty(t, idx.Words(""))
	assert.Empty(t, idx.Words("999"))
}

func TestAddSkipsDuplicates(t *testing.T) {
	idx := Build(nil, keypad.Default())
	assert.True(t, idx.Add("CAT", keypad.Default()))
	assert.False(t, idx.Add("cat", keypad.Default()))
	assert.False(t, idx.Add("", keypad.Default()))
	assert.Equal(t, 1, idx.Len())
}

func TestComplete(t *testing.T) {
	idx := Build([]string{"HOME", "GOOD", "GONE", "IN", "GO", "HOMES", "INK"}, keypad.Default())

	got := idx.Complete("46", 0)
	words := make([]string, 0, len(got))
	for _, s := range got {
		words = append(words, s.Word)
	}
	assert.Equal(t, []string{"GO", "IN", "INK", "GONE", "GOOD", "HOME", "HOMES"}, words)

	limited := idx.Complete("466", 2)
	assert.Equal(t, []Suggestion{{Word: "GONE", Digits: "4663"}, {Word: "GOOD", Digits: "4663"}}, limited)

	assert.Empty(t, idx.Complete("", 10))
	assert.Empty(t, idx.Complete("999", 10))
}

func TestCustomKeypad(t *testing.T) {
	keys, err := keypad.New(map[byte]string{'1': "Z", '9': "WXY"})
	assert.NoError(t, err)

	idx := Build([]string{"ZOO", "WAY"}, keys)
	assert.Equal(t, []string{"ZOO"}, idx.Words("166"))
	assert.Equal(t, []string{"WAY"}, idx.Words("929"))
}

func TestLetterOnSeveralKeys(t *testing.T) {
	keys, err := keypad.New(map[byte]string{'1': "A"})
	assert.NoError(t, err)

	idx := Build([]string{"AT", "CAT"}, keys)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"AT"}, idx.Words("28"))
	assert.Equal(t, []string{"AT"}, idx.Words("18"))
	assert.Equal(t, []string{"CAT"}, idx.Words("228"))
	assert.Equal(t, []string{"CAT"}, idx.Words("218"))
	assert.False(t, idx.Add("at", keys))

	got := idx.Complete("2", 0)
	assert.Equal(t, []Suggestion{{Word: "AT", Digits: "28"}, {Word: "CAT", Digits: "218"}}, got)
}
