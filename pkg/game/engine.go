/*
Package game implements the hot/cold ranking engine: target selection
against the similarity store, guess scoring with rank/percentile/hotness,
adaptive hints, and the session state that ties them together.
*/
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sagnik31/wordhunt/pkg/similarity"
)

// ErrTargetNotIndexed means an explicitly requested target has no row in
// the similarity data. A caller mistake, distinct from ErrNoValidTarget.
var ErrTargetNotIndexed = errors.New("requested target not present in similarity data")

// ErrNoValidTarget means the bounded random search exhausted its attempt
// limit without finding a word with a non-empty row. A data-quality
// failure; callers should abort startup rather than retry.
var ErrNoValidTarget = errors.New("no target with a non-empty similarity row found")

// Engine holds the current target's materialized similarity row and
// scores guesses against it. Methods are not safe for concurrent
// mutation; Session serializes access.
type Engine struct {
	vocab *Vocabulary
	store *similarity.Store
	rng   *rand.Rand

	target string
	row    similarity.Row
	pos    map[string]int // word -> zero-based index into row
	total  int            // len(row) + 1, the target counts as self
}

// NewEngine wires the engine to its data sources. rng may be nil, in
// which case a time-seeded source is used; tests inject a fixed seed.
func NewEngine(vocab *Vocabulary, store *similarity.Store, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{vocab: vocab, store: store, rng: rng}
}

// SelectTarget picks a new target and materializes its similarity row.
// A non-empty requested word is normalized and used as the sole
// candidate; otherwise every indexed word is eligible. Candidates with
// empty rows are rejected and redrawn, bounded at 3x the pool size.
func (e *Engine) SelectTarget(requested string) (string, error) {
	var candidates []string
	if req := Normalize(requested); req != "" {
		if !e.store.Contains(req) {
			return "", fmt.Errorf("%q: %w", req, ErrTargetNotIndexed)
		}
		candidates = []string{req}
	} else {
		candidates = e.store.Words()
	}
	if len(candidates) == 0 {
		return "", ErrNoValidTarget
	}

	for attempt := 0; attempt < 3*len(candidates); attempt++ {
		chosen := candidates[e.rng.Intn(len(candidates))]
		row, err := e.store.Row(chosen)
		if err != nil {
			return "", fmt.Errorf("reading similarity row: %w", err)
		}
		if len(row) == 0 {
			log.Debugf("Rejecting target candidate %q: empty similarity row", chosen)
			continue
		}

		pos := make(map[string]int, len(row))
		for i, ent := range row {
			pos[ent.Word] = i
		}
		e.target = chosen
		e.row = row
		e.pos = pos
		e.total = len(row) + 1
		log.Debugf("Selected target %q with %d neighbors", chosen, len(row))
		return chosen, nil
	}
	return "", ErrNoValidTarget
}

// Target returns the current target word.
func (e *Engine) Target() string {
	return e.target
}

// Total returns the comparable word count for the current target,
// neighbors plus the target itself.
func (e *Engine) Total() int {
	return e.total
}

// Guess scores a raw guess against the current target. Input problems
// are encoded in the result, never returned as errors, so the transport
// layer can always produce a well-formed response.
func (e *Engine) Guess(raw string) GuessResult {
	guess := Normalize(raw)
	res := GuessResult{Guess: guess}

	if guess == "" {
		res.Error = "Empty guess."
		return res
	}
	if !e.vocab.Contains(guess) {
		res.Error = "Word is not in the allowed vocabulary."
		return res
	}
	if !e.store.Contains(guess) {
		res.Error = "Word is missing from similarity data."
		return res
	}

	res.Valid = true
	res.Total = e.total

	if guess == e.target {
		res.IsCorrect = true
		res.Rank = 1
		res.Similarity = 1.0
		res.Percentile = 100.0
		res.Hotness = Hotness(res.Similarity)
		return res
	}

	idx, ok := e.pos[guess]
	if !ok {
		// Index and row disagree. Recoverable per request, not fatal.
		log.Errorf("Guess %q is indexed but missing from target %q's row", guess, e.target)
		res.Valid = false
		res.Total = 0
		res.Error = "Internal error: guess not found in target similarity data."
		return res
	}

	res.Rank = idx + 1
	res.Similarity = e.row[idx].Score
	res.Percentile = Percentile(res.Rank, e.total)
	res.Hotness = Hotness(res.Similarity)
	return res
}

// GuessResult is the outcome of scoring one guess. When Valid is false
// only Guess and Error are meaningful.
type GuessResult struct {
	Guess      string
	Valid      bool
	Error      string
	IsCorrect  bool
	Rank       int
	Total      int
	Similarity float64
	Percentile float64
	Hotness    string
}
