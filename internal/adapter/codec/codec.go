// Package codec implements file serialisation strategies for postings
// mappings. BinaryPolicy writes the fixed big-endian interchange layout,
// JSONPolicy a human-readable equivalent for debugging and interop.
package codec

import "errors"

var (
	// ErrFieldOverflow reports a term length, postings-list length, term
	// count, or document ID that does not fit its fixed-width binary field.
	ErrFieldOverflow = errors.New("value exceeds binary field range")

	// ErrTruncated reports a stream that ended before the declared content,
	// or declared lengths exceeding the remaining bytes.
	ErrTruncated = errors.New("truncated index stream")

	// ErrInvalidUTF8 reports term bytes that do not decode as UTF-8.
	ErrInvalidUTF8 = errors.New("term is not valid UTF-8")
)
