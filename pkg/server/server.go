package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/sagnik31/wordhunt/pkg/game"
	"github.com/sagnik31/wordhunt/pkg/similarity"
)

// Server handles the IPC for one game session.
type Server struct {
	session *game.Session
	vocab   *game.Vocabulary
	store   *similarity.Store
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
}

// NewServer creates a game server using stdin/stdout for IPC.
func NewServer(session *game.Session, vocab *game.Vocabulary, store *similarity.Store) *Server {
	return NewServerIO(session, vocab, store, os.Stdin, os.Stdout)
}

// NewServerIO creates a game server on explicit streams, used by tests.
func NewServerIO(session *game.Session, vocab *game.Vocabulary, store *similarity.Store, r io.Reader, w io.Writer) *Server {
	return &Server{
		session: session,
		vocab:   vocab,
		store:   store,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting game server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// The stream has no framing to resync on, so a decode
			// failure ends the session.
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "guess":
		s.handleGuess(req)
	case "hint":
		s.handleHint(req)
	case "reveal":
		s.send(RevealResponse{ID: req.ID, Answer: s.session.Reveal()})
	case "new_target":
		s.handleNewTarget(req)
	case "health":
		s.send(HealthResponse{
			ID:           req.ID,
			Status:       "ok",
			VocabWords:   s.vocab.Len(),
			IndexedWords: s.store.Len(),
			TargetLoaded: s.session.Reveal() != "",
		})
	default:
		s.sendError(req.ID, "Unknown action: "+req.Action, 400)
	}
}

func (s *Server) handleGuess(req Request) {
	start := time.Now()
	res := s.session.Guess(req.Word)
	s.send(GuessResponse{
		ID:         req.ID,
		Guess:      res.Guess,
		Valid:      res.Valid,
		Error:      res.Error,
		IsCorrect:  res.IsCorrect,
		Rank:       res.Rank,
		Total:      res.Total,
		Similarity: res.Similarity,
		Percentile: res.Percentile,
		Hotness:    res.Hotness,
		TimeTaken:  time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleHint(req Request) {
	start := time.Now()
	hint, err := s.session.Hint()
	if err != nil {
		log.Errorf("Serving hint: %v", err)
		s.sendError(req.ID, "Internal server error", 500)
		return
	}
	s.send(HintResponse{
		ID:         req.ID,
		Word:       hint.Word,
		Rank:       hint.Rank,
		Total:      hint.Total,
		Similarity: hint.Similarity,
		Percentile: hint.Percentile,
		Hotness:    hint.Hotness,
		TimeTaken:  time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleNewTarget(req Request) {
	if _, err := s.session.NewTarget(req.Word); err != nil {
		if errors.Is(err, game.ErrTargetNotIndexed) {
			s.send(TargetResponse{ID: req.ID, Status: "error", Error: err.Error()})
			return
		}
		log.Errorf("Selecting new target: %v", err)
		s.sendError(req.ID, "Internal server error", 500)
		return
	}
	s.send(TargetResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
