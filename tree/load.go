package tree

import (
	"errors"
	"fmt"

	"github.com/tabkv/go-tabkv/debug"
	"github.com/tabkv/go-tabkv/format"
	"github.com/tabkv/go-tabkv/record"
)

// The structural error kinds a load can fail with.
var (
	ErrIllegalDepth = errors.New("illegal depth")
	ErrDuplicateKey = errors.New("duplicate key")
)

// DepthError reports a record nested more than one level deeper than its
// predecessor.
type DepthError struct {
	Depth    int // depth of the offending record
	MaxDepth int // deepest depth legal at that point
	Record   int // 1-based record ordinal
	Line     int // source line when known, else 0
}

func (e *DepthError) Unwrap() error {
	return ErrIllegalDepth
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: depth %d exceeds %d at %s",
		ErrIllegalDepth, e.Depth, e.MaxDepth, at(e.Record, e.Line))
}

// DuplicateKeyError reports two sibling entries sharing a local key.
type DuplicateKeyError struct {
	Key    string
	Record int // 1-based record ordinal
	Line   int // source line when known, else 0
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %q at %s", ErrDuplicateKey, e.Key, at(e.Record, e.Line))
}

func at(rec, line int) string {
	if line > 0 {
		return fmt.Sprintf("line %d", line)
	}
	return fmt.Sprintf("record %d", rec)
}

// Load builds the entry tree from records in document order. Depth may
// only grow by one from one record to the next, and no two siblings may
// share a local key; violating either fails the whole load, and no
// partial tree is returned.
func Load(recs []record.Record) (*Tree, error) {
	t := New()
	prev := t.Root()
	prevDepth := format.RootDepth
	for i := range recs {
		rec := &recs[i]
		// The text parser never yields a negative depth, but a corrupt
		// wire stream can. Reject it before the attach logic walks off
		// the root.
		if rec.Depth < 0 {
			return nil, &DepthError{
				Depth:    rec.Depth,
				MaxDepth: prevDepth + 1,
				Record:   i + 1,
				Line:     rec.Line,
			}
		}
		var parent Ref
		switch {
		case rec.Depth == prevDepth:
			// Sibling of the previous entry.
			parent, _ = prev.Parent()
		case rec.Depth == prevDepth+1:
			// Child of the previous entry.
			parent = prev
		case rec.Depth < prevDepth:
			// Walk back up to the record's level.
			p, _ := prev.Parent()
			for d := prevDepth; d > rec.Depth; d-- {
				p, _ = p.Parent()
			}
			parent = p
		default:
			return nil, &DepthError{
				Depth:    rec.Depth,
				MaxDepth: prevDepth + 1,
				Record:   i + 1,
				Line:     rec.Line,
			}
		}
		if _, ok := parent.child(rec.Key); ok {
			return nil, &DuplicateKeyError{
				Key:    rec.Key,
				Record: i + 1,
				Line:   rec.Line,
			}
		}
		prev = parent.addChild(rec.Key, rec.Value, rec.Comments)
		prevDepth = rec.Depth
	}
	if debug.Load() {
		debug.Logf("load: %d records -> %d entries\n", len(recs), t.Len())
	}
	return t, nil
}
