package corpus

import "strings"

// ChunkText splits a document into segments bounded by the given word
// counts, cutting at sentence boundaries where possible.
//
// Written-language samples are chunked so their length distribution
// matches short speech utterances; otherwise the classifier learns a
// length shortcut instead of a linguistic-complexity signal.
//
// Sentences are accumulated greedily: when adding the next sentence
// would push the current chunk past MaxWords, the chunk is flushed and
// a new one starts. A single sentence longer than MaxWords is never
// split, so one chunk can exceed the bound by at most one sentence.
// Chunks shorter than MinWords are discarded unless the document
// produced only one chunk, so very short documents are never lost.
func ChunkText(text string, bounds ChunkBounds) []string {
	units := splitSentences(text)

	chunks := make([]string, 0)
	current := make([]string, 0)
	currentWords := 0

	for _, unit := range units {
		words := len(strings.Fields(unit))
		if words == 0 {
			continue
		}
		if currentWords+words > bounds.MaxWords && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			currentWords = 0
		}
		current = append(current, unit)
		currentWords += words
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	if len(chunks) == 1 {
		return chunks
	}
	kept := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if len(strings.Fields(chunk)) >= bounds.MinWords {
			kept = append(kept, chunk)
		}
	}
	return kept
}

// splitSentences breaks text after end-of-sentence punctuation followed
// by whitespace. The whitespace separator is consumed; runs of closing
// punctuation ("wait...") stay inside one unit.
func splitSentences(text string) []string {
	units := make([]string, 0)
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		j := i + 1
		if j >= len(text) || !isSpaceByte(text[j]) {
			continue
		}
		units = append(units, text[start:i+1])
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(text) {
		units = append(units, text[start:])
	}
	return units
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
