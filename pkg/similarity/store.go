/*
Package similarity reads the precomputed word-similarity file.

The file is a line-oriented text artifact written by the offline pipeline:
one line per word, tab-separated into the word itself and a comma-separated
list of "other:score" pairs, pre-sorted descending by score. The package
never loads the whole file; it indexes each line's byte offset once at
startup and seeks to a single row on demand.
*/
package similarity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNoSimilarityData means the file yielded zero indexable rows.
// Treated as a startup failure, not a per-request one.
var ErrNoSimilarityData = errors.New("similarity file contains no parsable rows")

// Store maps every word in the similarity file to the byte offset of its
// row and serves point-reads of individual rows. Immutable after Open,
// safe for any number of concurrent readers.
type Store struct {
	path    string
	offsets map[string]int64
	words   []string // file order, backs the target candidate pool
}

// Open scans the similarity file once, recording the starting byte offset
// of every non-empty first tab-field.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening similarity file: %w", err)
	}
	defer f.Close()

	s := &Store{
		path:    path,
		offsets: make(map[string]int64),
	}

	r := bufio.NewReaderSize(f, 1<<20)
	var pos int64
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			field := line
			if tab := strings.IndexByte(line, '\t'); tab >= 0 {
				field = line[:tab]
			}
			word := strings.TrimSpace(field)
			if word != "" {
				if _, dup := s.offsets[word]; !dup {
					s.words = append(s.words, word)
				}
				s.offsets[word] = pos
			}
			pos += int64(len(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scanning similarity file: %w", err)
		}
	}

	if len(s.offsets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSimilarityData)
	}
	log.Debugf("Indexed %d similarity rows from %s", len(s.offsets), path)
	return s, nil
}

// Contains reports whether the word has a row in the similarity file.
func (s *Store) Contains(word string) bool {
	_, ok := s.offsets[word]
	return ok
}

// Len returns the number of indexed rows.
func (s *Store) Len() int {
	return len(s.offsets)
}

// Words returns the indexed words in file order. The returned slice is
// shared; callers must not mutate it.
func (s *Store) Words() []string {
	return s.words
}

// Row seeks to the word's row and parses it. A word with an empty
// neighbor list yields an empty row, which is valid but unusable as a
// target. Reads reopen the file, so concurrent Row calls never share a
// seek position; this happens only on target selection, never per guess.
func (s *Store) Row(word string) (Row, error) {
	offset, ok := s.offsets[word]
	if !ok {
		return nil, fmt.Errorf("word %q not present in similarity index", word)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening similarity file: %w", err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to row for %q: %w", word, err)
	}
	line, err := bufio.NewReaderSize(f, 1<<20).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading row for %q: %w", word, err)
	}
	if line == "" {
		return nil, fmt.Errorf("empty read at offset %d for %q", offset, word)
	}
	return parseRow(line), nil
}
