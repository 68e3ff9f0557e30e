package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestChooseHintRankBands(t *testing.T) {
	tests := []struct {
		name      string
		nOthers   int
		bestRank  int
		strength  Strength
		low, high int
	}{
		{"no best, strong", 200, 0, StrengthStrong, 1, 50},
		{"no best, soft", 200, 0, StrengthSoft, 50, 100},
		{"no best, soft, short row", 60, 0, StrengthSoft, 50, 60},
		{"no best, soft, tiny row falls back", 30, 0, StrengthSoft, 1, 20},
		{"far best treated as unset", 200, 150, StrengthStrong, 1, 50},
		{"mid best, strong beats it", 200, 80, StrengthStrong, 1, 79},
		{"mid best, soft window above it", 200, 80, StrengthSoft, 40, 79},
		{"small best, soft window", 200, 6, StrengthSoft, 1, 5},
		{"best already 1 stays near top", 200, 1, StrengthStrong, 1, 5},
		{"best 2 strong collapses to rank 1", 200, 2, StrengthStrong, 1, 1},
		{"best clamped to row length", 50, 100, StrengthStrong, 1, 49},
		{"single neighbor", 1, 0, StrengthSoft, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 200; i++ {
				rank := chooseHintRank(rng, tt.nOthers, tt.bestRank, tt.strength)
				if rank < tt.low || rank > tt.high {
					t.Fatalf("draw %d: rank %d outside band [%d, %d]", i, rank, tt.low, tt.high)
				}
			}
		})
	}
}

func TestChooseHintRankWithinRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 120; n++ {
		for _, best := range []int{0, 1, 2, n / 2, n, n + 50, 101} {
			for _, strength := range []Strength{StrengthSoft, StrengthStrong} {
				rank := chooseHintRank(rng, n, best, strength)
				if rank < 1 || rank > n {
					t.Fatalf("rank %d outside [1, %d] for best=%d strength=%s", rank, n, best, strength)
				}
			}
		}
	}
}

func TestHintCarriesRowData(t *testing.T) {
	e := newTestEngine(t, fixtureSim, fixtureVocab, 3)
	if _, err := e.SelectTarget("dog"); err != nil {
		t.Fatalf("SelectTarget: %v", err)
	}

	hint, err := e.Hint(0, StrengthStrong)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if hint.Rank < 1 || hint.Rank > 3 {
		t.Fatalf("hint rank %d outside row", hint.Rank)
	}
	// The returned word/score must come from the row at rank-1.
	res := e.Guess(hint.Word)
	if res.Rank != hint.Rank {
		t.Errorf("guessing hint word ranks %d, hint said %d", res.Rank, hint.Rank)
	}
	if res.Similarity != hint.Similarity {
		t.Errorf("similarity mismatch: %v vs %v", res.Similarity, hint.Similarity)
	}
	if hint.Total != 4 {
		t.Errorf("hint total = %d, want 4", hint.Total)
	}
	if !almostEqual(hint.Percentile, Percentile(hint.Rank, 4)) {
		t.Errorf("hint percentile = %v, want shared formula value", hint.Percentile)
	}
	if hint.Hotness != Hotness(hint.Similarity) {
		t.Errorf("hint hotness = %q, want %q", hint.Hotness, Hotness(hint.Similarity))
	}
}

func TestHintWithoutTargetRow(t *testing.T) {
	e := newTestEngine(t, fixtureSim, fixtureVocab, 1)
	if _, err := e.Hint(0, StrengthSoft); !errors.Is(err, ErrEmptyTargetRow) {
		t.Errorf("Hint on uninitialized engine: err = %v, want ErrEmptyTargetRow", err)
	}
}

// bigRowFixture builds a target with n neighbors so the fixed hint bands
// do not collapse.
func bigRowFixture(n int) string {
	var b strings.Builder
	b.WriteString("star\t")
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "w%03d:%.6f", i, 0.95-float64(i)*0.002)
	}
	b.WriteByte('\n')
	return b.String()
}

func TestStrongHintBeatsBestRank(t *testing.T) {
	e := newTestEngine(t, bigRowFixture(200), "star\n", 11)
	if _, err := e.SelectTarget("star"); err != nil {
		t.Fatalf("SelectTarget: %v", err)
	}

	for _, best := range []int{100, 60, 20, 5, 2} {
		for i := 0; i < 50; i++ {
			hint, err := e.Hint(best, StrengthStrong)
			if err != nil {
				t.Fatalf("Hint: %v", err)
			}
			if hint.Rank >= best {
				t.Fatalf("strong hint rank %d not better than best %d", hint.Rank, best)
			}
		}
	}
}
