package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/spellophone/pkg/index"
	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/bastiangx/spellophone/pkg/phoneword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entries = []phoneword.Entry{
	{Text: "CATS", Score: 16},
	{Text: "CAT-7", Score: 9},
	{Text: "2-AT-7", Score: 4},
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name string
		opts PrintOptions
		want string
	}{
		{"plain", PrintOptions{}, "CATS\nCAT-7\n2-AT-7\n"},
		{"scores", PrintOptions{ShowScores: true}, "CATS\t16\nCAT-7\t9\n2-AT-7\t4\n"},
		{"limit", PrintOptions{Limit: 2}, "CATS\nCAT-7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, tt.opts).Print(entries))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinterOrder(t *testing.T) {
	assert.Equal(t, phoneword.Descending, NewPrinter(nil, PrintOptions{}).Order())
	assert.Equal(t, phoneword.Ascending, NewPrinter(nil, PrintOptions{LowestFirst: true}).Order())
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	PrintStats(&buf, Stats{Files: []string{"/usr/share/dict/words"}, Lines: 104334, Words: 73012, Nodes: 201456})
	out := buf.String()
	assert.Contains(t, out, "/usr/share/dict/words")
	assert.Contains(t, out, "104,334")
	assert.Contains(t, out, "73,012")
	assert.Contains(t, out, "201,456")
}

func TestInputHandler(t *testing.T) {
	words := []string{"CAT", "CATS", "AT"}
	solver, err := phoneword.NewSolver(words)
	require.NoError(t, err)

	var out bytes.Buffer
	printer := NewPrinter(&out, PrintOptions{ShowScores: true, LowestFirst: true})
	h := NewInputHandler(solver, index.Build(words, keypad.Default()), printer, &out, 5)

	input := strings.Join([]string{"228-7", "", "12", "?22", "?999"}, "\n")
	require.NoError(t, h.Run(strings.NewReader(input)))

	got := out.String()
	assert.Contains(t, got, "2287")
	assert.Contains(t, got, "2-AT-7\t4\nCAT-7\t9\nCATS\t16\n")
	assert.Contains(t, got, "Found 2 words for '22'")
	assert.Contains(t, got, "CATS")
	assert.Equal(t, 4, h.RequestCount(), "blank lines are skipped")
}
