/*
Package server implements msgpack IPC for vocabulary queries.

Clients write one msgpack encoded Request per message on stdin and read one
msgpack encoded response per request on stdout. Requests are handled strictly
in order, so the vocabulary never sees concurrent access.

# IPC

Every request carries an ID that is echoed back. The action selects the
operation; an empty action with a prefix is a completion request:

	{"id": "req_001", "p": "go", "k": 3, "l": 10}

The server responds with words in prefix-tree order, ranked by position:

	{"id": "req_001", "s": [{"w": "go", "r": 1}, {"w": "goal", "r": 2}], "c": 2, "t": 38}

Vocabulary edits and lookups return a status response:

	{"id": "a1", "action": "add", "w": ["gopher", "golang"]}   -> {"id": "a1", "status": "ok", "count": 2}
	{"id": "h1", "action": "contains", "w": ["gopher"]}        -> {"id": "h1", "status": "ok", "found": true}
	{"id": "d1", "action": "delete", "w": ["gopher"]}          -> {"id": "d1", "status": "ok", "found": true}
	{"id": "s1", "action": "size"}                             -> {"id": "s1", "status": "ok", "count": 1}

Failures are reported as a CompletionError with an HTTP style code:
400 for invalid input and 404 for unknown actions.
*/
package server

// Actions understood by the server
const (
	ActionComplete = "complete"
	ActionContains = "contains"
	ActionAdd      = "add"
	ActionDelete   = "delete"
	ActionSize     = "size"
	ActionHealth   = "health"
)

// Request is the single inbound message shape
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action,omitempty"`
	Prefix string   `msgpack:"p,omitempty"`
	K      *int     `msgpack:"k,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
	Words  []string `msgpack:"w,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatusResponse answers every non completion action
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Count  int    `msgpack:"count,omitempty"`
	Found  bool   `msgpack:"found,omitempty"`
	Error  string `msgpack:"error,omitempty"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
