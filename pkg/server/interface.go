/*
Package server implements msgpack IPC for the hot/cold game engine.

The server speaks binary msgpack over stdin/stdout on a request-response
model. Each request carries an ID, an action, and an optional word; the
response echoes the ID so clients can correlate out-of-band.

A guess request:

	{"id": "req_001", "action": "guess", "w": "cat"}

answers with rank metadata:

	{"id": "req_001", "g": "cat", "v": true, "r": 2, "n": 4, "s": 0.81, "p": 66.67, "h": "Very hot", "t": 0}

Invalid guesses keep the response well-formed: "v" is false and "e"
carries the reason. Hints ("hint"), target reveal ("reveal"), re-target
("new_target", optional "w" forces a specific word) and "health" follow
the same shape. Timing is reported in milliseconds.

Requests against one server are processed synchronously in arrival
order, which also serializes the session's best-rank bookkeeping.
*/
package server

// Request is one incoming IPC message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Word   string `msgpack:"w,omitempty"`
}

// GuessResponse mirrors game.GuessResult. Ranked fields are omitted
// when the guess was invalid.
type GuessResponse struct {
	ID         string  `msgpack:"id"`
	Guess      string  `msgpack:"g"`
	Valid      bool    `msgpack:"v"`
	Error      string  `msgpack:"e,omitempty"`
	IsCorrect  bool    `msgpack:"ok,omitempty"`
	Rank       int     `msgpack:"r,omitempty"`
	Total      int     `msgpack:"n,omitempty"`
	Similarity float64 `msgpack:"s,omitempty"`
	Percentile float64 `msgpack:"p,omitempty"`
	Hotness    string  `msgpack:"h,omitempty"`
	TimeTaken  int64   `msgpack:"t"`
}

// HintResponse is a fully populated hint.
type HintResponse struct {
	ID         string  `msgpack:"id"`
	Word       string  `msgpack:"w"`
	Rank       int     `msgpack:"r"`
	Total      int     `msgpack:"n"`
	Similarity float64 `msgpack:"s"`
	Percentile float64 `msgpack:"p"`
	Hotness    string  `msgpack:"h"`
	TimeTaken  int64   `msgpack:"t"`
}

// RevealResponse returns the current target word.
type RevealResponse struct {
	ID     string `msgpack:"id"`
	Answer string `msgpack:"answer"`
}

// TargetResponse acknowledges a re-target without leaking the word.
type TargetResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// HealthResponse reports engine readiness and data sizes.
type HealthResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	VocabWords   int    `msgpack:"vocab_words"`
	IndexedWords int    `msgpack:"indexed_words"`
	TargetLoaded bool   `msgpack:"target_loaded"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
