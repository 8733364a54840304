package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellophone/internal/utils"
	"github.com/bastiangx/spellophone/pkg/config"
	"github.com/bastiangx/spellophone/pkg/index"
	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/bastiangx/spellophone/pkg/phoneword"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server answers decomposition and lookup requests over msgpack.
type Server struct {
	solver       *phoneword.Solver
	index        *index.Index
	config       *config.Config
	cache        *ResultCache
	requestCount int
}

// NewServer creates a server. idx may be nil, in which case lookups fail.
func NewServer(solver *phoneword.Solver, idx *index.Index, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		solver: solver,
		index:  idx,
		config: cfg,
		cache:  NewResultCache(cfg.Server.CacheSize),
	}
}

// Start serves stdin and stdout until stdin is closed.
func (s *Server) Start() error {
	log.Debug("Starting msgpack server")
	w := bufio.NewWriter(os.Stdout)
	return s.Serve(context.Background(), os.Stdin, w)
}

// Serve decodes requests from r until EOF or until ctx is done, writing one
// response per request to w. A w with a Flush method is flushed after every
// response.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	enc := msgpack.NewEncoder(w)
	flusher, _ := w.(interface{ Flush() error })

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				log.Debug("Client closed the stream")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.send(enc, flusher, ErrorResponse{Error: "invalid msgpack request", Code: 400})
			return fmt.Errorf("decoding request: %w", err)
		}

		s.requestCount++
		if err := s.send(enc, flusher, s.handle(req)); err != nil {
			return err
		}
	}
}

func (s *Server) send(enc *msgpack.Encoder, flusher interface{ Flush() error }, resp any) error {
	if err := enc.Encode(resp); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encoding response: %w", err)
	}
	if flusher != nil {
		return flusher.Flush()
	}
	return nil
}

func (s *Server) handle(req Request) any {
	switch req.Action {
	case "", ActionDecompose:
		return s.handleDecompose(req)
	case ActionLookup:
		return s.handleLookup(req)
	case ActionHealth:
		t := s.solver.Trie()
		return HealthResponse{
			ID:     req.ID,
			Status: "ok",
			Words:  t.WordCount(),
			Nodes:  t.NodeCount(),
			Keypad: s.solver.Keypad().String(),
		}
	default:
		return errorf(req.ID, 400, "unknown action: %s", req.Action)
	}
}

func (s *Server) handleDecompose(req Request) any {
	solver := s.solver
	if len(req.Keypad) > 0 {
		keys, err := requestKeypad(solver.Keypad(), req.Keypad)
		if err != nil {
			return errorf(req.ID, 400, "%v", err)
		}
		solver = solver.WithKeypad(keys)
	}

	number, err := solver.Validate(req.Number)
	if err != nil {
		log.Debugf("Rejected number %q: %v", req.Number, err)
		return errorf(req.ID, 400, "%v", err)
	}

	order := phoneword.Descending
	if req.Lowest {
		order = phoneword.Ascending
	}

	start := time.Now()
	key := cacheKey(solver.Keypad().String(), number, order)
	entries, ok := s.cache.Get(key)
	if !ok {
		entries, err = solver.DecomposeOrdered(number, order)
		if err != nil {
			return errorf(req.ID, 500, "%v", err)
		}
		s.cache.Put(key, entries)
	}
	elapsed := time.Since(start)

	entries = truncate(entries, s.limit(req.Limit))
	ranks := utils.CreateRankList(len(entries))
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Text: e.Text, Score: e.Score, Rank: ranks[i]}
	}

	return DecomposeResponse{
		ID:        req.ID,
		Entries:   out,
		Count:     len(out),
		TimeTaken: elapsed.Microseconds(),
	}
}

func (s *Server) handleLookup(req Request) any {
	if s.index == nil {
		return errorf(req.ID, 500, "lookup index not loaded")
	}
	digits := phoneword.Normalize(req.Number)
	if !utils.IsOnlyNumbers(digits) {
		return errorf(req.ID, 400, "invalid digits: %q", req.Number)
	}

	start := time.Now()
	found := s.index.Complete(digits, s.limit(req.Limit))
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(found))
	out := make([]Suggestion, len(found))
	for i, sug := range found {
		out[i] = Suggestion{Word: sug.Word, Digits: sug.Digits, Rank: ranks[i]}
	}
	return LookupResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	}
}

// limit picks the request limit, falling back to the configured one.
// Zero means no limit.
func (s *Server) limit(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.config.Output.Limit
}

// RequestCount returns how many requests were served.
func (s *Server) RequestCount() int {
	return s.requestCount
}

// CacheStats returns the result cache counters.
func (s *Server) CacheStats() map[string]int {
	return s.cache.Stats()
}

func requestKeypad(base keypad.Map, remaps map[string]string) (keypad.Map, error) {
	overrides, err := keypad.ParseOverrides(remaps)
	if err != nil {
		return keypad.Map{}, err
	}
	keys := base
	for digit, letters := range overrides {
		if err := keys.Set(digit, letters); err != nil {
			return keypad.Map{}, err
		}
	}
	return keys, nil
}

func truncate(entries []phoneword.Entry, limit int) []phoneword.Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func errorf(id string, code int, format string, args ...any) ErrorResponse {
	return ErrorResponse{ID: id, Error: fmt.Sprintf(format, args...), Code: code}
}
