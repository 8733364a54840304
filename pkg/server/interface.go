/*
Package server implements msgpack IPC for phone number decomposition.

Clients write msgpack encoded requests on stdin and read one msgpack
response per request on stdout. Requests are processed in order, with the
time taken in microseconds included in every successful response.

Decompose a number, highest scores first:

	{"id": "req_001", "n": "228-7", "l": 2}

	{"id": "req_001", "e": [{"t": "CATS", "s": 16, "r": 1}, {"t": "CAT-7", "s": 9, "r": 2}], "c": 2, "t": 87}

Remap keys for a single request and list lowest scores first:

	{"id": "req_002", "n": "2287", "k": {"1": "QZ"}, "r": true}

T9 style lookups list the words whose digits start with the given ones:

	{"id": "req_003", "a": "lookup", "n": "466", "l": 3}

	{"id": "req_003", "s": [{"w": "GONE", "d": "4663", "r": 1}], "c": 1, "t": 12}

Failures come back as {"id": ..., "e": "message", "c": code}, with codes
following HTTP: 400 for bad requests, 500 for internal errors.
*/
package server

// Request actions.
const (
	ActionDecompose = "decompose"
	ActionLookup    = "lookup"
	ActionHealth    = "health"
)

// Request is a single IPC request. An empty action means decompose.
type Request struct {
	ID     string            `msgpack:"id"`
	Action string            `msgpack:"a,omitempty"`
	Number string            `msgpack:"n"`
	Limit  int               `msgpack:"l,omitempty"`
	Keypad map[string]string `msgpack:"k,omitempty"`
	Lowest bool              `msgpack:"r,omitempty"`
}

// Entry is one decomposition in a response.
type Entry struct {
	Text  string `msgpack:"t"`
	Score int    `msgpack:"s"`
	Rank  uint32 `msgpack:"r"`
}

// DecomposeResponse lists the decompositions of a number.
type DecomposeResponse struct {
	ID        string  `msgpack:"id"`
	Entries   []Entry `msgpack:"e"`
	Count     int     `msgpack:"c"`
	TimeTaken int64   `msgpack:"t"`
}

// Suggestion is a word matched by a lookup.
type Suggestion struct {
	Word   string `msgpack:"w"`
	Digits string `msgpack:"d"`
	Rank   uint32 `msgpack:"r"`
}

// LookupResponse lists the words completing a digit prefix.
type LookupResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// HealthResponse reports the loaded dictionary.
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
	Nodes  int    `msgpack:"nodes"`
	Keypad string `msgpack:"keypad"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
