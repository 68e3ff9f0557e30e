// Package cli provides an interactive play loop for testing the engine
// without a client attached.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sagnik31/wordhunt/pkg/game"
)

// InputHandler reads guesses and slash-commands from stdin and prints
// scored results.
type InputHandler struct {
	session         *game.Session
	vocab           *game.Vocabulary
	prefixListLimit int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(session *game.Session, vocab *game.Vocabulary, prefixListLimit int) *InputHandler {
	return &InputHandler{
		session:         session,
		vocab:           vocab,
		prefixListLimit: prefixListLimit,
	}
}

// Start begins the interface loop. It terminates on stdin EOF, on
// /quit, or when the target is guessed.
func (h *InputHandler) Start() error {
	log.Print("WordHunt CLI")
	log.Print("guess a word, or use /hint /reveal /new /starts <prefix> /quit")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if done := h.handleCommand(line); done {
				return nil
			}
			continue
		}
		if done := h.handleGuess(line); done {
			return nil
		}
	}
}

// handleCommand processes a slash-command. Returns true to exit.
func (h *InputHandler) handleCommand(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case "/quit":
		log.Printf("Target was: %s", h.session.Reveal())
		return true
	case "/reveal":
		log.Printf("Current target: %s", h.session.Reveal())
	case "/new":
		if _, err := h.session.NewTarget(arg); err != nil {
			log.Errorf("New target: %v", err)
			return false
		}
		log.Print("New target selected.")
	case "/hint":
		hint, err := h.session.Hint()
		if err != nil {
			log.Errorf("Hint: %v", err)
			return false
		}
		log.Printf("Hint: %s | rank #%d/%d | sim=%.4f (%.1f percentile) - %s",
			hint.Word, hint.Rank, hint.Total-1, hint.Similarity, hint.Percentile, hint.Hotness)
	case "/starts":
		prefix := game.Normalize(arg)
		if prefix == "" {
			log.Warn("Usage: /starts <prefix>")
			return false
		}
		words := h.vocab.WordsWithPrefix(prefix, h.prefixListLimit)
		if len(words) == 0 {
			log.Printf("No vocabulary words start with %q", prefix)
			return false
		}
		log.Printf("%s", strings.Join(words, " "))
	default:
		log.Warnf("Unknown command: %s", cmd)
	}
	return false
}

// handleGuess scores one guess. Returns true when the target was found.
func (h *InputHandler) handleGuess(raw string) bool {
	res := h.session.Guess(raw)
	if !res.Valid {
		log.Warnf("Invalid guess: %s", res.Error)
		return false
	}
	if res.IsCorrect {
		log.Printf("Correct! %s | rank=%d | similarity=%.4f", res.Guess, res.Rank, res.Similarity)
		return true
	}
	log.Printf("Guess: %q | rank #%d/%d | sim=%.4f (%.1f percentile) - %s",
		res.Guess, res.Rank, res.Total-1, res.Similarity, res.Percentile, res.Hotness)
	return false
}
