/*
Package server implements msgpack IPC for word completion services.

Clients write msgpack encoded requests to the server's input and read one
msgpack encoded response per request from its output. No framing is used:
the msgpack stream itself delimits messages. Requests are processed one at
a time, in order.

# Requests

Every request carries an ID echoed in the response, an op and the op's
arguments:

	{"id": "req_001", "op": "complete", "p": "ca", "l": 10}
	{"id": "req_002", "op": "submit", "p": "catalog"}
	{"id": "req_003", "op": "contains", "p": "cat"}
	{"id": "req_004", "op": "recent", "p": "c", "l": 5}
	{"id": "req_005", "op": "all"}
	{"id": "req_006", "op": "stats"}
	{"id": "req_007", "op": "health"}

An empty op means complete.

# Responses

Completions come back in traversal order; r is the 1-based position:

	{"id": "req_001", "s": [{"w": "cat", "r": 1}, {"w": "car", "r": 2}], "c": 2, "t": 14}

t is the time spent in microseconds. An empty prefix, or one that no stored
word starts with, yields an empty s rather than an error.

Errors carry an HTTP style code:

	{"id": "req_008", "e": "unknown op: remove", "c": 400}

On start the server writes {"status": "ready"}.

A message that decodes as msgpack but is not a valid request gets a 400 and
the server keeps reading. Bytes that are not msgpack at all end the stream
with an error, since the next message boundary can no longer be found.
*/
package server

// Ops understood by the server.
const (
	OpComplete = "complete"
	OpSubmit   = "submit"
	OpContains = "contains"
	OpRecent   = "recent"
	OpAll      = "all"
	OpStats    = "stats"
	OpHealth   = "health"
)

// Request is the envelope for every client message
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// SubmitResponse reports whether a submitted term was learned
type SubmitResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Learned bool   `msgpack:"learned"`
}

// ContainsResponse answers a membership query
type ContainsResponse struct {
	ID    string `msgpack:"id"`
	Found bool   `msgpack:"found"`
}

// WordsResponse lists stored or recent words
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"w"`
	Count int      `msgpack:"c"`
}

// StatsResponse carries completer counters
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse is used for ready and health messages
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
