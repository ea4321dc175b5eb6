// Package record defines the flat, ordered record form of a store. Records
// are produced by the text parser and the wire decoder, and consumed by the
// tree loader and the wire encoder. Their order is a pre-order traversal of
// the entry tree, so it is significant.
package record

// A Record is one entry of a store before tree construction.
type Record struct {
	// Depth is the nesting depth, counted in leading tabs in the text
	// form. Depth 0 entries are children of the root.
	Depth int

	// Key is the entry's local key. It is never empty and never
	// contains the path separator; the parser enforces both.
	Key string

	// Value is nil for a dummy entry.
	Value *string

	// Comments are the comment lines attached to the entry, in source
	// order, without their leading comment prefix.
	Comments []string

	// Line is the 1-based source line the record was parsed from.
	// It is advisory: the wire form does not carry it, so decoded
	// records leave it 0.
	Line int
}

// HasValue reports whether r carries a value, i.e. is not a dummy entry.
func (r *Record) HasValue() bool {
	return r.Value != nil
}

// Value returns a pointer to s, for building records in place.
func Value(s string) *string {
	return &s
}
