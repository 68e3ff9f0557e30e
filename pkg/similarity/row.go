package similarity

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Entry is one neighbor in a similarity row.
type Entry struct {
	Word  string
	Score float64
}

// Row is the ordered neighbor list for one word, descending by score.
// The writer guarantees the order; readers never re-sort. The row's own
// word is excluded by the writer.
type Row []Entry

// parseRow parses a single similarity line. The part after the first tab
// is a comma-separated list of "other:score" tokens; each token splits on
// its last colon. A malformed token is skipped rather than aborting the
// row, so one bad entry cannot corrupt the rest.
func parseRow(line string) Row {
	line = strings.TrimRight(line, "\r\n")
	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return nil
	}
	right := line[tab+1:]
	if right == "" {
		return nil
	}

	tokens := strings.Split(right, ",")
	row := make(Row, 0, len(tokens))
	for _, tok := range tokens {
		colon := strings.LastIndexByte(tok, ':')
		if colon <= 0 {
			log.Debugf("Skipping malformed similarity token %q", tok)
			continue
		}
		word := tok[:colon]
		// Word tokens never contain the score separator; a second colon
		// means the token is garbage, not a legal word.
		if strings.IndexByte(word, ':') >= 0 {
			log.Debugf("Skipping malformed similarity token %q", tok)
			continue
		}
		score, err := strconv.ParseFloat(tok[colon+1:], 64)
		if err != nil {
			log.Debugf("Skipping similarity token %q: %v", tok, err)
			continue
		}
		row = append(row, Entry{Word: word, Score: score})
	}
	return row
}
