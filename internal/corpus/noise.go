package corpus

import (
	"math/rand"
	"strings"
)

// Per-word mutation cutoffs. These are nested thresholds against a
// single draw, not independent probabilities: with one r per word the
// effective chances are 3% drop, 5% transpose, 3% delete on words
// passing the length gates.
const (
	noiseDropCutoff      = 0.03
	noiseTransposeCutoff = 0.08
	noiseDeleteCutoff    = 0.11
)

// Augmenter perturbs clean text to emulate ASR recognition errors, so
// written-corpus samples statistically resemble speech transcripts.
// All randomness comes from the supplied source, so a fixed seed gives
// byte-identical output.
type Augmenter struct {
	rng  *rand.Rand
	rate float64
}

// NewAugmenter returns an augmenter that mutates each input with the
// given probability (the remainder passes through unchanged, which
// preserves a majority-clean subset at the default rate of 0.2).
func NewAugmenter(rng *rand.Rand, rate float64) *Augmenter {
	return &Augmenter{rng: rng, rate: rate}
}

// Augment returns a noisy copy of text, or text itself when this call
// lands in the clean pass-through.
//
// Each word draws one random value r and applies the first matching
// rule: short words (< 4 runes) are dropped when r < 0.03, emulating
// ASR swallowing function words; longer words get an adjacent-character
// transposition when r < 0.08, or an interior character deletion
// (> 4 runes) when r < 0.11; otherwise the word is kept as is.
func (a *Augmenter) Augment(text string) string {
	if a.rng.Float64() >= a.rate {
		return text
	}

	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		r := a.rng.Float64()
		switch {
		case len(runes) < 4 && r < noiseDropCutoff:
			// Dropped.
		case len(runes) > 3 && r < noiseTransposeCutoff:
			out = append(out, a.transpose(runes))
		case len(runes) > 4 && r < noiseDeleteCutoff:
			out = append(out, a.deleteRune(runes))
		default:
			out = append(out, word)
		}
	}
	return strings.Join(out, " ")
}

// transpose swaps one adjacent rune pair at an interior position,
// keeping the first rune anchored.
func (a *Augmenter) transpose(runes []rune) string {
	i := 1 + a.rng.Intn(len(runes)-2)
	runes[i], runes[i+1] = runes[i+1], runes[i]
	return string(runes)
}

// deleteRune removes one rune strictly between the first and last.
func (a *Augmenter) deleteRune(runes []rune) string {
	i := 1 + a.rng.Intn(len(runes)-2)
	return string(append(runes[:i], runes[i+1:]...))
}
