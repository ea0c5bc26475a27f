package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"invidx/internal/domain"
)

// Binary layout, big-endian throughout:
//
//	int32  N                number of distinct terms
//	repeat N times:
//	  int16  L              byte length of the UTF-8 term
//	  L bytes               term
//	  int16  M              number of document IDs
//	  M x int16             document IDs
//
// Terms appear in the mapping's insertion order, IDs in stored list order.
// The widths are fixed so files stay interchangeable with existing indexes.

// BinaryPolicy reads and writes postings mappings in the binary layout above.
type BinaryPolicy struct{}

// NewBinaryPolicy creates a BinaryPolicy.
func NewBinaryPolicy() *BinaryPolicy {
	return &BinaryPolicy{}
}

// Dump writes the mapping to path, replacing any existing file.
func (BinaryPolicy) Dump(p *domain.Postings, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating index file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, p); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing index file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing index file: %w", err)
	}
	return nil
}

// Load reads a mapping from path.
func (BinaryPolicy) Load(path string) (*domain.Postings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index file: %w", err)
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}

// Encode writes the binary layout to w. It fails with ErrFieldOverflow if any
// value does not fit its field, leaving w partially written.
func Encode(w io.Writer, p *domain.Postings) error {
	terms := p.Terms()
	if len(terms) > math.MaxInt32 {
		return fmt.Errorf("%w: %d terms", ErrFieldOverflow, len(terms))
	}
	if err := binary.Write(w, binary.BigEndian, int32(len(terms))); err != nil {
		return fmt.Errorf("writing term count: %w", err)
	}
	for _, term := range terms {
		if len(term) > math.MaxInt16 {
			return fmt.Errorf("%w: term %.20q... is %d bytes", ErrFieldOverflow, term, len(term))
		}
		if err := binary.Write(w, binary.BigEndian, int16(len(term))); err != nil {
			return fmt.Errorf("writing term length: %w", err)
		}
		if _, err := io.WriteString(w, term); err != nil {
			return fmt.Errorf("writing term: %w", err)
		}
		ids, _ := p.DocIDs(term)
		if len(ids) > math.MaxInt16 {
			return fmt.Errorf("%w: term %q has %d postings", ErrFieldOverflow, term, len(ids))
		}
		if err := binary.Write(w, binary.BigEndian, int16(len(ids))); err != nil {
			return fmt.Errorf("writing postings length: %w", err)
		}
		for _, id := range ids {
			if id < 0 || id > math.MaxInt16 {
				return fmt.Errorf("%w: document id %d", ErrFieldOverflow, id)
			}
			if err := binary.Write(w, binary.BigEndian, int16(id)); err != nil {
				return fmt.Errorf("writing document id: %w", err)
			}
		}
	}
	return nil
}

// Decode reads the binary layout from r. It never returns a partial mapping:
// a short or inconsistent stream yields ErrTruncated, invalid term bytes
// ErrInvalidUTF8.
func Decode(r io.Reader) (*domain.Postings, error) {
	var count int32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, readErr("term count", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative term count %d", ErrTruncated, count)
	}
	p := domain.NewPostings()
	for i := int32(0); i < count; i++ {
		var termLen int16
		if err := binary.Read(r, binary.BigEndian, &termLen); err != nil {
			return nil, readErr("term length", err)
		}
		if termLen < 0 {
			return nil, fmt.Errorf("%w: negative term length %d", ErrTruncated, termLen)
		}
		raw := make([]byte, termLen)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, readErr("term", err)
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidUTF8, raw)
		}
		var idCount int16
		if err := binary.Read(r, binary.BigEndian, &idCount); err != nil {
			return nil, readErr("postings length", err)
		}
		if idCount < 0 {
			return nil, fmt.Errorf("%w: negative postings length %d", ErrTruncated, idCount)
		}
		ids := make([]int, idCount)
		for j := range ids {
			var id int16
			if err := binary.Read(r, binary.BigEndian, &id); err != nil {
				return nil, readErr("document id", err)
			}
			ids[j] = int(id)
		}
		p.Put(string(raw), ids)
	}
	return p, nil
}

// readErr maps stream exhaustion to ErrTruncated and passes real IO failures
// through.
func readErr(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncated, field)
	}
	return fmt.Errorf("reading %s: %w", field, err)
}
