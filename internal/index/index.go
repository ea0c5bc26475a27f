// Package index implements the inverted index aggregate: building a postings
// mapping from documents, evaluating multi-term AND queries against it, and
// persisting it through an injected storage policy.
package index

import (
	"fmt"
	"sort"

	"invidx/internal/domain"
	"invidx/internal/port"
)

// MatchPolicy decides how Query treats a term absent from the index. Variants
// of this tool historically disagreed here; the policy is one explicit knob
// so a query never mixes both behaviours.
type MatchPolicy int

const (
	// MatchAllTerms is the strict default: an unknown term forces an empty
	// result, since no document can contain every requested term.
	MatchAllTerms MatchPolicy = iota

	// MatchKnownTerms skips unknown terms and intersects only the rest.
	MatchKnownTerms
)

// ParseMatchPolicy maps the config/flag spelling to a MatchPolicy.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch s {
	case "", "strict":
		return MatchAllTerms, nil
	case "skip":
		return MatchKnownTerms, nil
	default:
		return MatchAllTerms, fmt.Errorf("unknown missing-term policy %q (want strict or skip)", s)
	}
}

// Index owns a postings mapping. Build and Load populate it once; after that
// it is read-only, so any number of goroutines may Query it concurrently.
// Rebuilding while queries are in flight is not supported: build a new Index
// and swap the reference.
type Index struct {
	postings *domain.Postings
	policy   MatchPolicy
}

// Option configures an Index.
type Option func(*Index)

// WithMatchPolicy sets the missing-term policy used by Query.
func WithMatchPolicy(p MatchPolicy) Option {
	return func(ix *Index) {
		ix.policy = p
	}
}

// New creates an empty Index.
func New(opts ...Option) *Index {
	ix := &Index{postings: domain.NewPostings()}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Build indexes the documents in the order given. Each document contributes
// its distinct terms once; postings lists keep first-seen document order. An
// empty corpus yields an empty index, not an error.
func Build(docs []domain.Document, tok port.Tokenizer, opts ...Option) *Index {
	ix := New(opts...)
	for _, doc := range docs {
		ix.Add(doc, tok)
	}
	return ix
}

// Add indexes one document. It is the incremental step Build is made of, kept
// exported so callers driving a progress display can loop themselves.
func (ix *Index) Add(doc domain.Document, tok port.Tokenizer) {
	for _, term := range tok.Tokenize(doc.Text) {
		ix.postings.Add(term, doc.ID)
	}
}

// Query returns the IDs of documents containing every term, deduplicated and
// in ascending order. An empty term list yields an empty result. Unknown
// terms are handled per the index's MatchPolicy and are never an error.
func (ix *Index) Query(terms []string) []int {
	var resultSet map[int]struct{}
	for _, term := range terms {
		ids, ok := ix.postings.DocIDs(term)
		if !ok {
			if ix.policy == MatchKnownTerms {
				continue
			}
			return []int{}
		}
		if resultSet == nil {
			resultSet = make(map[int]struct{}, len(ids))
			for _, id := range ids {
				resultSet[id] = struct{}{}
			}
			continue
		}
		termSet := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			termSet[id] = struct{}{}
		}
		for id := range resultSet {
			if _, ok := termSet[id]; !ok {
				delete(resultSet, id)
			}
		}
	}
	result := make([]int, 0, len(resultSet))
	for id := range resultSet {
		result = append(result, id)
	}
	sort.Ints(result)
	return result
}

// Dump persists the postings mapping through the given storage policy.
func (ix *Index) Dump(policy port.StoragePolicy, path string) error {
	return policy.Dump(ix.postings, path)
}

// Load reconstructs an Index from a file written by the same storage policy.
func Load(policy port.StoragePolicy, path string, opts ...Option) (*Index, error) {
	p, err := policy.Load(path)
	if err != nil {
		return nil, err
	}
	ix := New(opts...)
	ix.postings = p
	return ix, nil
}

// Postings exposes the underlying mapping for storage policies and tests.
func (ix *Index) Postings() *domain.Postings {
	return ix.postings
}

// Terms returns the number of distinct terms.
func (ix *Index) Terms() int {
	return ix.postings.Len()
}

// Equal reports whether both indexes hold equal postings mappings.
func (ix *Index) Equal(other *Index) bool {
	if other == nil {
		return false
	}
	return ix.postings.Equal(other.postings)
}
