// Package cli holds the terminal side of spellophone: result printing and
// the interactive prompt.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellophone/pkg/index"
	"github.com/bastiangx/spellophone/pkg/phoneword"
	"github.com/charmbracelet/log"
)

// InputHandler runs the interactive prompt. Every line is decomposed as a
// number, except lines starting with '?' which list the words whose digits
// start with the rest of the line.
type InputHandler struct {
	solver       *phoneword.Solver
	index        *index.Index
	printer      *Printer
	out          io.Writer
	suggestLimit int
	requestCount int
}

// NewInputHandler creates a prompt writing results to out. idx may be nil,
// which disables '?' lookups.
func NewInputHandler(solver *phoneword.Solver, idx *index.Index, printer *Printer, out io.Writer, limit int) *InputHandler {
	return &InputHandler{
		solver:       solver,
		index:        idx,
		printer:      printer,
		out:          out,
		suggestLimit: limit,
	}
}

// Start reads from stdin until it is closed.
func (h *InputHandler) Start() error {
	log.Print("spellophone interactive mode")
	log.Print("type a phone number and press Enter, or ?digits for words (Ctrl+D to exit):")
	return h.Run(os.Stdin)
}

// Run processes r line by line. It returns nil at EOF.
func (h *InputHandler) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

// RequestCount returns how many lines were handled.
func (h *InputHandler) RequestCount() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	if digits, ok := strings.CutPrefix(line, "?"); ok {
		h.handleLookup(strings.TrimSpace(digits))
		return
	}

	number, err := h.solver.Validate(line)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	start := time.Now()
	entries, err := h.solver.DecomposeOrdered(number, h.printer.Order())
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	log.Debugf("Took [ %v ] for number '%s'", time.Since(start), number)

	fmt.Fprintln(h.out, titleStyle.Render(number))
	if err := h.printer.Print(entries); err != nil {
		log.Errorf("Writing results: %v", err)
	}
}

func (h *InputHandler) handleLookup(digits string) {
	if h.index == nil {
		log.Warn("Word lookup is not available")
		return
	}
	digits = phoneword.Normalize(digits)
	if digits == "" {
		log.Errorf("Nothing to look up")
		return
	}

	suggestions := h.index.Complete(digits, h.suggestLimit)
	if len(suggestions) == 0 {
		log.Warnf("No words found for digits: '%s'", digits)
		return
	}

	fmt.Fprintf(h.out, "Found %d words for '%s':\n", len(suggestions), digits)
	for i, s := range suggestions {
		fmt.Fprintf(h.out, "%2d. %-24s %s\n", i+1, wordStyle.Render(s.Word), digitStyle.Render(s.Digits))
	}
}
