package port

import "invidx/internal/domain"

// StoragePolicy is one serialisation strategy for a postings mapping. The
// binary codec is the interchange format; alternative policies (JSON, bolt)
// satisfy the same contract. Dump writes the full mapping to path, Load
// reconstructs it preserving stored term order. Implementations never return
// partial mappings on error.
type StoragePolicy interface {
	Dump(p *domain.Postings, path string) error

	Load(path string) (*domain.Postings, error)
}
