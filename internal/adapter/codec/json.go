package codec

import (
	"encoding/json"
	"fmt"
	"os"

	"invidx/internal/domain"
)

// jsonEntry is one term of the JSON layout. An ordered array is used instead
// of a single object because decoding an object into a Go map would lose the
// term insertion order the round-trip guarantee depends on.
type jsonEntry struct {
	Term   string `json:"term"`
	DocIDs []int  `json:"doc_ids"`
}

// JSONPolicy stores the mapping as a JSON array of term entries. It carries
// no field-width limits and exists as a debugging and interop convenience.
type JSONPolicy struct{}

// NewJSONPolicy creates a JSONPolicy.
func NewJSONPolicy() *JSONPolicy {
	return &JSONPolicy{}
}

// Dump writes the mapping to path as JSON.
func (JSONPolicy) Dump(p *domain.Postings, path string) error {
	entries := make([]jsonEntry, 0, p.Len())
	for _, term := range p.Terms() {
		ids, _ := p.DocIDs(term)
		entries = append(entries, jsonEntry{Term: term, DocIDs: ids})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing index file: %w", err)
	}
	return nil
}

// Load reads a JSON mapping from path, preserving file order.
func (JSONPolicy) Load(path string) (*domain.Postings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index file: %w", err)
	}
	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	p := domain.NewPostings()
	for _, e := range entries {
		ids := e.DocIDs
		if ids == nil {
			ids = []int{}
		}
		p.Put(e.Term, ids)
	}
	return p, nil
}
