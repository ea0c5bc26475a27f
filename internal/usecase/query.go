package usecase

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"invidx/internal/index"
	"invidx/internal/port"
)

// QueryUseCase loads a persisted index and answers multi-term AND queries.
type QueryUseCase struct {
	ix     *index.Index
	logger *slog.Logger
}

// NewQueryUseCase loads the index at indexPath through the given storage
// policy.
func NewQueryUseCase(policy port.StoragePolicy, indexPath string, match index.MatchPolicy) (*QueryUseCase, error) {
	logger := slog.Default().With("component", "query")
	logger.Info("loading inverted index", "path", indexPath)

	ix, err := index.Load(policy, indexPath, index.WithMatchPolicy(match))
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	return &QueryUseCase{ix: ix, logger: logger}, nil
}

// Run returns the IDs of documents containing every term, ascending.
func (u *QueryUseCase) Run(terms []string) []int {
	ids := u.ix.Query(terms)
	u.logger.Debug("query evaluated", "terms", terms, "hits", len(ids))
	return ids
}

// FormatIDs renders document IDs the way the query command prints them,
// comma-joined without spaces.
func FormatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
