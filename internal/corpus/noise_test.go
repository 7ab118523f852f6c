package corpus

import (
	"math/rand"
	"strings"
	"testing"
)

func TestAugment_SkipForcedIsIdentity(t *testing.T) {
	t.Parallel()

	aug := NewAugmenter(rand.New(rand.NewSource(1)), 0)
	text := "the quick brown fox jumps over the lazy dog"
	for i := 0; i < 50; i++ {
		if got := aug.Augment(text); got != text {
			t.Fatalf("Augment with rate 0 = %q, want input unchanged", got)
		}
	}
}

func TestAugment_Deterministic(t *testing.T) {
	t.Parallel()

	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a longer utterance with several reasonably sized words inside",
		"tiny bit of it",
	}

	first := augmentAll(texts, 7)
	second := augmentAll(texts, 7)
	for i := range texts {
		if first[i] != second[i] {
			t.Fatalf("seed 7 run differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func augmentAll(texts []string, seed int64) []string {
	aug := NewAugmenter(rand.New(rand.NewSource(seed)), 1)
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = aug.Augment(text)
	}
	return out
}

// Every output word must be explainable by exactly one rule: kept
// verbatim, adjacent transposition, single interior deletion, or (for
// short words only) dropped.
func TestAugment_MutationsStayWithinRules(t *testing.T) {
	t.Parallel()

	word := "recognition"
	short := "of"
	text := strings.TrimSpace(strings.Repeat(word+" "+short+" ", 200))

	aug := NewAugmenter(rand.New(rand.NewSource(99)), 1)
	out := strings.Fields(aug.Augment(text))

	longSeen := map[string]int{}
	for _, got := range out {
		switch {
		case got == word || got == short:
			// kept
		case len(got) == len(word) && sameRuneMultiset(got, word):
			longSeen["transposed"]++
		case len(got) == len(word)-1 && isInteriorDeletion(got, word):
			longSeen["deleted"]++
		default:
			t.Fatalf("output word %q matches no mutation rule", got)
		}
	}
	if len(out) > 400 {
		t.Fatalf("output words = %d, want <= input words", len(out))
	}
	if longSeen["transposed"] == 0 && longSeen["deleted"] == 0 {
		t.Fatal("expected at least one mutation across 400 words at full rate")
	}
}

func TestAugment_ShortWordsOnlyDropOrKeep(t *testing.T) {
	t.Parallel()

	text := strings.TrimSpace(strings.Repeat("it ", 500))
	aug := NewAugmenter(rand.New(rand.NewSource(3)), 1)
	out := strings.Fields(aug.Augment(text))

	if len(out) >= 500 {
		t.Fatalf("output words = %d, want some of 500 short words dropped", len(out))
	}
	for _, got := range out {
		if got != "it" {
			t.Fatalf("short word mutated to %q, want drop or keep only", got)
		}
	}
}

func sameRuneMultiset(a string, b string) bool {
	counts := map[rune]int{}
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		counts[r]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// isInteriorDeletion reports whether got equals want with exactly one
// rune removed, keeping the first and last runes.
func isInteriorDeletion(got string, want string) bool {
	if got[0] != want[0] || got[len(got)-1] != want[len(want)-1] {
		return false
	}
	i := 0
	deleted := false
	for j := 0; j < len(want); j++ {
		if i < len(got) && got[i] == want[j] {
			i++
			continue
		}
		if deleted {
			return false
		}
		deleted = true
	}
	return deleted && i == len(got)
}
