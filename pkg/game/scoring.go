package game

import "strings"

// hotnessBands maps a raw similarity score to its label. Evaluated
// top-down, first match wins.
var hotnessBands = []struct {
	min   float64
	label string
}{
	{0.99, "Correct"},
	{0.90, "Boiling"},
	{0.75, "Very hot"},
	{0.60, "Hot"},
	{0.45, "Warm"},
	{0.30, "Cool"},
	{0.15, "Cold"},
}

// Hotness buckets a similarity score into its named band.
func Hotness(similarity float64) string {
	for _, band := range hotnessBands {
		if similarity >= band.min {
			return band.label
		}
	}
	return "Freezing"
}

// Percentile converts a 1-based rank into a closeness score: rank 1 is
// 100.0, the worst rank among total-1 others approaches 0. Guess scoring
// and hints share this formula.
func Percentile(rank, total int) float64 {
	others := total - 1
	if others < 1 {
		others = 1
	}
	return 100.0 * (1.0 - float64(rank-1)/float64(others))
}

// Normalize trims whitespace and lower-cases a raw guess or target word.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
