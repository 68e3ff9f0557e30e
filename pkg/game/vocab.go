package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Vocabulary is the immutable set of acceptable guess words, backed by a
// patricia trie so the CLI can also enumerate words by prefix.
type Vocabulary struct {
	trie *patricia.Trie
	size int
}

// LoadVocabulary reads a whitespace-separated token stream, lower-casing
// and trimming each token. Duplicates collapse.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening vocabulary file: %w", err)
	}

	v := &Vocabulary{trie: patricia.NewTrie()}
	for _, tok := range strings.Fields(string(data)) {
		word := strings.ToLower(strings.TrimSpace(tok))
		if word == "" {
			continue
		}
		if v.trie.Insert(patricia.Prefix(word), struct{}{}) {
			v.size++
		}
	}

	if v.size == 0 {
		log.Warnf("Vocabulary file %s yielded no words; every guess will be rejected", path)
	} else {
		log.Debugf("Loaded %d vocabulary words from %s", v.size, path)
	}
	return v, nil
}

// Contains reports whether word is an acceptable guess.
func (v *Vocabulary) Contains(word string) bool {
	return v.trie.Get(patricia.Prefix(word)) != nil
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return v.size
}

var errEnough = errors.New("enough words collected")

// WordsWithPrefix returns up to limit vocabulary words starting with
// prefix, in trie order. limit <= 0 means no limit.
func (v *Vocabulary) WordsWithPrefix(prefix string, limit int) []string {
	var words []string
	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		if limit > 0 && len(words) >= limit {
			return errEnough
		}
		words = append(words, string(p))
		return nil
	})
	if err != nil && err != errEnough {
		log.Errorf("Visiting vocabulary subtree: %v", err)
	}
	return words
}
