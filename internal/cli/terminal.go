package cli

import (
	"fmt"
	"io"

	"github.com/bastiangx/spellophone/internal/utils"
	"github.com/bastiangx/spellophone/pkg/phoneword"
	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	digitStyle = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// PrintOptions controls how decompositions are written.
type PrintOptions struct {
	ShowScores  bool
	LowestFirst bool
	// Limit caps the lines printed per number. Zero prints all.
	Limit int
}

// Printer writes decompositions one per line, optionally followed by a tab
// and the score.
type Printer struct {
	w    io.Writer
	opts PrintOptions
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts PrintOptions) *Printer {
	return &Printer{w: w, opts: opts}
}

// Order returns the order entries should be produced in.
func (p *Printer) Order() phoneword.Order {
	if p.opts.LowestFirst {
		return phoneword.Ascending
	}
	return phoneword.Descending
}

// Print writes entries in the order given.
func (p *Printer) Print(entries []phoneword.Entry) error {
	if p.opts.Limit > 0 && len(entries) > p.opts.Limit {
		entries = entries[:p.opts.Limit]
	}
	for _, e := range entries {
		var err error
		if p.opts.ShowScores {
			_, err = fmt.Fprintf(p.w, "%s\t%d\n", e.Text, e.Score)
		} else {
			_, err = fmt.Fprintln(p.w, e.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Stats is what -v reports once the dictionary is loaded.
type Stats struct {
	Files      []string
	Lines      int
	Words      int
	Duplicates int
	Nodes      int
}

// PrintStats writes a short dictionary summary.
func PrintStats(w io.Writer, s Stats) {
	fmt.Fprintln(w, titleStyle.Render("dictionary"))
	for _, f := range s.Files {
		fmt.Fprintf(w, "  file        %s\n", f)
	}
	fmt.Fprintf(w, "  lines read  %s\n", utils.FormatWithCommas(s.Lines))
	fmt.Fprintf(w, "  words       %s\n", utils.FormatWithCommas(s.Words))
	fmt.Fprintf(w, "  duplicates  %s\n", utils.FormatWithCommas(s.Duplicates))
	fmt.Fprintf(w, "  trie nodes  %s\n", utils.FormatWithCommas(s.Nodes))
}
