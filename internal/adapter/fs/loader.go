// Package fs loads document corpora from disk. A dataset file holds one
// document per line as "<id>\t<text>"; blank lines are skipped.
package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/charmap"

	"invidx/internal/domain"
)

// Supported dataset and query-file encodings.
const (
	EncodingUTF8   = "utf-8"
	EncodingCP1251 = "cp1251"
)

// Loader reads tab-separated dataset files.
type Loader struct {
	encoding string
}

// NewLoader creates a Loader decoding files with the given encoding, one of
// EncodingUTF8 or EncodingCP1251.
func NewLoader(encoding string) (*Loader, error) {
	switch encoding {
	case "", EncodingUTF8, EncodingCP1251:
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
	return &Loader{encoding: encoding}, nil
}

// Load reads every file matching pattern, in sorted path order, and returns
// the concatenated documents in file order. The pattern may be a plain path
// or a doublestar glob.
func (l *Loader) Load(pattern string) ([]domain.Document, error) {
	paths, err := expand(pattern)
	if err != nil {
		return nil, err
	}
	var docs []domain.Document
	for _, path := range paths {
		fileDocs, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// LoadFile reads a single dataset file.
func (l *Loader) LoadFile(path string) ([]domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	docs, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Read parses documents from r, applying the configured encoding.
func (l *Loader) Read(r io.Reader) ([]domain.Document, error) {
	scanner := bufio.NewScanner(DecodedReader(r, l.encoding))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var docs []domain.Document
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, text, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("line %d: no tab separator", lineNo)
		}
		docID, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad document id %q", lineNo, id)
		}
		docs = append(docs, domain.Document{
			ID:   docID,
			Text: strings.TrimSpace(text),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return docs, nil
}

// DecodedReader wraps r with a decoder for the given encoding. Unknown or
// empty encodings pass through as utf-8.
func DecodedReader(r io.Reader, encoding string) io.Reader {
	if encoding == EncodingCP1251 {
		return charmap.Windows1251.NewDecoder().Reader(r)
	}
	return r
}

// expand resolves a dataset pattern to a sorted file list. A path without
// glob metacharacters is returned as-is so missing-file errors stay precise.
func expand(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad dataset pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset files match %q", pattern)
	}
	sort.Strings(paths)
	return paths, nil
}
