package port

// Tokenizer extracts the distinct terms of a document text.
type Tokenizer interface {
	Tokenize(text string) []string
}
