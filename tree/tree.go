// Package tree builds and navigates the entry tree of a store.
//
// The tree is an arena: one flat slice owns every entry, and entries
// refer to their parent and children by index. Parent links are plain
// integers, so the upward references the format needs never form an
// ownership cycle.
package tree

import (
	"strings"

	"github.com/tabkv/go-tabkv/format"
)

const (
	rootIndex = 0
	noNode    = -1
)

type node struct {
	parent   int
	children []int
	key      string
	value    *string
	comments []string
}

// Tree owns the entries of one store. The entry at index 0 is the
// sentinel root: it has no key, no value, and depth -1.
type Tree struct {
	nodes []node
}

func New() *Tree {
	return &Tree{nodes: []node{{parent: noNode}}}
}

// Root returns the sentinel root entry.
func (t *Tree) Root() Ref {
	return Ref{t: t, i: rootIndex}
}

// Len returns the number of entries, excluding the root.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Ref is a handle on one entry of a Tree. The zero Ref is invalid;
// lookup functions report validity separately.
type Ref struct {
	t *Tree
	i int
}

func (r Ref) IsRoot() bool {
	return r.i == rootIndex
}

// LocalKey returns the entry's key relative to its parent. It is empty
// only for the root.
func (r Ref) LocalKey() string {
	return r.t.nodes[r.i].key
}

// Value returns the entry's value. ok is false for a dummy entry.
func (r Ref) Value() (string, bool) {
	v := r.t.nodes[r.i].value
	if v == nil {
		return "", false
	}
	return *v, true
}

// SetValue sets the entry's value, making a dummy entry a value entry.
func (r Ref) SetValue(v string) {
	r.t.nodes[r.i].value = &v
}

// Comments returns the comment lines attached to the entry.
func (r Ref) Comments() []string {
	return r.t.nodes[r.i].comments
}

// Parent returns the entry's parent. ok is false for the root.
func (r Ref) Parent() (Ref, bool) {
	p := r.t.nodes[r.i].parent
	if p == noNode {
		return Ref{}, false
	}
	return Ref{t: r.t, i: p}, true
}

// Children returns the entry's children in document order.
func (r Ref) Children() []Ref {
	ids := r.t.nodes[r.i].children
	res := make([]Ref, len(ids))
	for i, id := range ids {
		res[i] = Ref{t: r.t, i: id}
	}
	return res
}

// Key returns the entry's global key: the local keys from the root down
// to the entry, joined by the path separator. The root's key is empty.
func (r Ref) Key() string {
	if r.IsRoot() {
		return ""
	}
	parts := []string{}
	for e := r; !e.IsRoot(); e, _ = e.Parent() {
		parts = append(parts, e.LocalKey())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, string(format.PathSeparator))
}

// child scans the entry's children, in order, for one with the given
// local key.
func (r Ref) child(key string) (Ref, bool) {
	for _, id := range r.t.nodes[r.i].children {
		if r.t.nodes[id].key == key {
			return Ref{t: r.t, i: id}, true
		}
	}
	return Ref{}, false
}

// addChild appends a new child entry. The caller checks for duplicate
// keys first.
func (r Ref) addChild(key string, value *string, comments []string) Ref {
	id := len(r.t.nodes)
	r.t.nodes = append(r.t.nodes, node{
		parent:   r.i,
		key:      key,
		value:    value,
		comments: comments,
	})
	r.t.nodes[r.i].children = append(r.t.nodes[r.i].children, id)
	return Ref{t: r.t, i: id}
}
