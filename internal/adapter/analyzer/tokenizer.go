package analyzer

import "strings"

// Tokenizer splits text on whitespace into distinct terms. Terms are taken
// verbatim: no lowercasing, stemming, or punctuation stripping, so "Word" and
// "word" index separately.
type Tokenizer struct{}

// NewTokenizer creates a whitespace Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the distinct whitespace-delimited tokens of text in order
// of first occurrence. Duplicate tokens within one text contribute once.
func (t *Tokenizer) Tokenize(text string) []string {
	words := strings.Fields(text)
	terms := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		terms = append(terms, word)
	}
	return terms
}
