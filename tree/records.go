package tree

import "github.com/tabkv/go-tabkv/record"

// Records flattens the tree back into records in pre-order. The result
// reloads into an equal tree and is what the wire codec serializes.
func (t *Tree) Records() []record.Record {
	recs := make([]record.Record, 0, t.Len())
	for _, c := range t.Root().Children() {
		recs = flatten(c, 0, recs)
	}
	return recs
}

func flatten(e Ref, depth int, recs []record.Record) []record.Record {
	rec := record.Record{
		Depth:    depth,
		Key:      e.LocalKey(),
		Comments: e.Comments(),
	}
	if v, ok := e.Value(); ok {
		rec.Value = record.Value(v)
	}
	recs = append(recs, rec)
	for _, c := range e.Children() {
		recs = flatten(c, depth+1, recs)
	}
	return recs
}
