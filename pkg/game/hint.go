package game

import (
	"errors"
	"math/rand"
)

// Strength controls how aggressively a hint must beat the player's best
// rank so far.
type Strength string

const (
	StrengthSoft   Strength = "soft"
	StrengthStrong Strength = "strong"
)

// ErrEmptyTargetRow should be unreachable: target selection only accepts
// words with non-empty rows. Kept as an invariant check.
var ErrEmptyTargetRow = errors.New("target similarity row is empty")

// HintResult is a suggested word with the same scoring fields a ranked
// guess would carry.
type HintResult struct {
	Word       string
	Rank       int
	Total      int
	Similarity float64
	Percentile float64
	Hotness    string
}

// Hint picks a word from a rank band derived from the player's best rank
// so far. bestRank 0 means no ranked result yet.
func (e *Engine) Hint(bestRank int, strength Strength) (HintResult, error) {
	if len(e.row) == 0 {
		return HintResult{}, ErrEmptyTargetRow
	}
	rank := chooseHintRank(e.rng, len(e.row), bestRank, strength)
	ent := e.row[rank-1]
	return HintResult{
		Word:       ent.Word,
		Rank:       rank,
		Total:      e.total,
		Similarity: ent.Score,
		Percentile: Percentile(rank, e.total),
		Hotness:    Hotness(ent.Score),
	}, nil
}

// chooseHintRank resolves the rank band and draws a uniform rank from it.
//
// With no best rank yet (or one worse than 100) the bands are fixed:
// strong hints come from the top 50, soft ones from 50..100. Once the
// player is inside the top 100 the hint is strictly better than their
// best rank; soft hints stay in a window just above it, strong hints may
// come from anywhere better. A collapsed window falls back to the top 20.
func chooseHintRank(rng *rand.Rand, nOthers, bestRank int, strength Strength) int {
	var low, high int

	if bestRank == 0 || bestRank > 100 {
		if strength == StrengthStrong {
			low, high = 1, min(50, nOthers)
		} else {
			low, high = 50, min(100, nOthers)
			if low > nOthers {
				low, high = 1, min(20, nOthers)
			}
		}
	} else {
		best := min(bestRank, nOthers)
		switch {
		case best <= 1:
			// Nothing left to improve; stay near the top.
			low, high = 1, min(5, nOthers)
		case strength == StrengthStrong:
			low, high = 1, best-1
		default:
			window := max(5, best/2)
			low, high = max(1, best-window), best-1
		}
	}

	low = max(1, min(low, nOthers))
	high = max(1, min(high, nOthers))
	if low > high {
		low, high = 1, min(20, nOthers)
	}
	return low + rng.Intn(high-low+1)
}
