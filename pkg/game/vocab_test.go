package game

import (
	"testing"
)

func TestLoadVocabularyNormalizes(t *testing.T) {
	path := writeFixture(t, "vocab.txt", "Dog CAT\n\tdog  puppy\nwolf\n")
	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	if v.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (duplicates collapse)", v.Len())
	}
	for _, w := range []string{"dog", "cat", "puppy", "wolf"} {
		if !v.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if v.Contains("Dog") {
		t.Error("Contains(Dog) = true; lookups are lower-case only")
	}
	if v.Contains("fox") {
		t.Error("Contains(fox) = true, want false")
	}
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	if _, err := LoadVocabulary("/nonexistent/vocab.txt"); err == nil {
		t.Error("LoadVocabulary on missing file: err = nil, want error")
	}
}

func TestWordsWithPrefix(t *testing.T) {
	path := writeFixture(t, "vocab.txt", "dog dodge door cat dot\n")
	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}

	words := v.WordsWithPrefix("do", 0)
	if len(words) != 4 {
		t.Fatalf("WordsWithPrefix(do) = %v, want 4 words", words)
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	for _, w := range []string{"dog", "dodge", "door", "dot"} {
		if !seen[w] {
			t.Errorf("WordsWithPrefix(do) missing %q", w)
		}
	}

	limited := v.WordsWithPrefix("do", 2)
	if len(limited) != 2 {
		t.Errorf("WordsWithPrefix(do, 2) = %v, want 2 words", limited)
	}

	if got := v.WordsWithPrefix("zzz", 0); len(got) != 0 {
		t.Errorf("WordsWithPrefix(zzz) = %v, want empty", got)
	}
}
