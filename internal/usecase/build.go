package usecase

import (
	"fmt"
	"log/slog"

	"invidx/internal/adapter/fs"
	"invidx/internal/domain"
	"invidx/internal/index"
	"invidx/internal/port"
)

// BuildUseCase loads a dataset, builds the inverted index, and persists it
// through the configured storage policy.
type BuildUseCase struct {
	loader    *fs.Loader
	tokenizer port.Tokenizer
	policy    port.StoragePolicy
	logger    *slog.Logger
}

// NewBuildUseCase creates a build use case.
func NewBuildUseCase(loader *fs.Loader, tokenizer port.Tokenizer, policy port.StoragePolicy) *BuildUseCase {
	return &BuildUseCase{
		loader:    loader,
		tokenizer: tokenizer,
		policy:    policy,
		logger:    slog.Default().With("component", "build"),
	}
}

// BuildResult contains the results of a build operation.
type BuildResult struct {
	Documents int
	Terms     int
	IndexPath string
}

// ProgressFunc reports build progress after each indexed document.
type ProgressFunc func(processed, total int)

// Run builds the index from datasetPath (a file or glob) and dumps it to
// indexPath. progress may be nil.
func (u *BuildUseCase) Run(datasetPath, indexPath string, progress ProgressFunc) (*BuildResult, error) {
	u.logger.Info("loading documents", "dataset", datasetPath)
	docs, err := u.loader.Load(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	ix := u.buildIndex(docs, progress)
	u.logger.Info("built inverted index", "documents", len(docs), "terms", ix.Terms())

	if err := ix.Dump(u.policy, indexPath); err != nil {
		return nil, fmt.Errorf("dumping index: %w", err)
	}
	u.logger.Info("dumped inverted index", "path", indexPath)

	return &BuildResult{
		Documents: len(docs),
		Terms:     ix.Terms(),
		IndexPath: indexPath,
	}, nil
}

func (u *BuildUseCase) buildIndex(docs []domain.Document, progress ProgressFunc) *index.Index {
	ix := index.New()
	for i, doc := range docs {
		ix.Add(doc, u.tokenizer)
		if progress != nil {
			progress(i+1, len(docs))
		}
	}
	return ix
}
