// Package store persists postings mappings in a bbolt database. It is an
// alternative storage policy to the flat-file codecs; the database form trades
// the fixed interchange layout for transactional writes.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"invidx/internal/domain"
)

var bucketPostings = []byte("postings")

// boltEntry is the stored value for one term.
type boltEntry struct {
	Term   string `json:"term"`
	DocIDs []int  `json:"doc_ids"`
}

// BoltPolicy stores the mapping in a bbolt file, keyed by term sequence
// number so insertion order survives the round trip.
type BoltPolicy struct{}

// NewBoltPolicy creates a BoltPolicy.
func NewBoltPolicy() *BoltPolicy {
	return &BoltPolicy{}
}

// Dump writes the mapping into the database at path in one transaction,
// replacing any previous contents.
func (BoltPolicy) Dump(p *domain.Postings, path string) error {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return fmt.Errorf("opening bolt db: %w", err)
	}
	defer db.Close()

	err = db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketPostings) != nil {
			if err := tx.DeleteBucket(bucketPostings); err != nil {
				return fmt.Errorf("clearing postings bucket: %w", err)
			}
		}
		b, err := tx.CreateBucket(bucketPostings)
		if err != nil {
			return fmt.Errorf("creating postings bucket: %w", err)
		}
		for seq, term := range p.Terms() {
			ids, _ := p.DocIDs(term)
			data, err := json.Marshal(boltEntry{Term: term, DocIDs: ids})
			if err != nil {
				return fmt.Errorf("encoding term %q: %w", term, err)
			}
			if err := b.Put(seqKey(seq), data); err != nil {
				return fmt.Errorf("storing term %q: %w", term, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Load reads the mapping back in sequence order.
func (BoltPolicy) Load(path string) (*domain.Postings, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	defer db.Close()

	p := domain.NewPostings()
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPostings)
		if b == nil {
			return fmt.Errorf("no postings bucket in %s", path)
		}
		return b.ForEach(func(k, v []byte) error {
			var e boltEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decoding entry %x: %w", k, err)
			}
			ids := e.DocIDs
			if ids == nil {
				ids = []int{}
			}
			p.Put(e.Term, ids)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// seqKey encodes a sequence number so bolt's sorted key iteration yields
// insertion order.
func seqKey(seq int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(seq))
	return k
}
