package tree

import (
	"strings"

	"github.com/tabkv/go-tabkv/format"
)

// Resolve descends from the root along the dotted key, scanning each
// entry's children in document order. With create set, missing entries
// are appended as dummies along the way, so Resolve always succeeds.
// Without it, ok is false when any step of the path is missing.
func (t *Tree) Resolve(key string, create bool) (Ref, bool) {
	cur := t.Root()
	for _, part := range strings.Split(key, string(format.PathSeparator)) {
		child, ok := cur.child(part)
		if !ok {
			if !create {
				return Ref{}, false
			}
			child = cur.addChild(part, nil, nil)
		}
		cur = child
	}
	return cur, true
}
