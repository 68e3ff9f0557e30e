package game

import (
	"sync"
)

// DefaultSoftHintLimit is the hint number at which strength escalates to
// strong when not configured otherwise.
const DefaultSoftHintLimit = 3

// Session is the externally facing game object: one engine, one target,
// and the per-target best-rank and hint-count state. A mutex serializes
// mutating operations so the best-rank update is atomic with the rank
// computation; independent sessions share nothing and run in parallel.
type Session struct {
	mu            sync.Mutex
	engine        *Engine
	softHintLimit int

	bestRank  int // numerically lowest rank seen; 0 = none yet
	hintCount int // hints served since the last target change
}

// NewSession wraps an engine. softHintLimit <= 0 selects the default.
// The engine must not be shared across sessions.
func NewSession(engine *Engine, softHintLimit int) *Session {
	if softHintLimit <= 0 {
		softHintLimit = DefaultSoftHintLimit
	}
	return &Session{engine: engine, softHintLimit: softHintLimit}
}

// NewTarget selects a new target (random when requested is empty) and
// resets the session counters.
func (s *Session) NewTarget(requested string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.engine.SelectTarget(requested)
	if err != nil {
		return "", err
	}
	s.bestRank = 0
	s.hintCount = 0
	return target, nil
}

// Guess scores a guess and folds any ranked outcome into the best rank.
func (s *Session) Guess(raw string) GuessResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.engine.Guess(raw)
	if res.Valid {
		s.observeRank(res.Rank)
	}
	return res
}

// Hint serves a hint at the current strength, counts it, and folds its
// rank into the best rank exactly as a guess would.
func (s *Session) Hint() (HintResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	strength := StrengthSoft
	if s.hintCount+1 >= s.softHintLimit {
		strength = StrengthStrong
	}
	hint, err := s.engine.Hint(s.bestRank, strength)
	if err != nil {
		return HintResult{}, err
	}
	s.hintCount++
	s.observeRank(hint.Rank)
	return hint, nil
}

// Reveal returns the current target without mutating any state.
func (s *Session) Reveal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Target()
}

// BestRank returns the best rank seen for the current target, 0 if none.
func (s *Session) BestRank() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestRank
}

// HintCount returns hints served since the last target change.
func (s *Session) HintCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hintCount
}

// observeRank keeps the numerically lowest rank. Callers hold the lock.
func (s *Session) observeRank(rank int) {
	if s.bestRank == 0 || rank < s.bestRank {
		s.bestRank = rank
	}
}
