// Package model holds the DecorationSet aggregate and the two operations
// that rebuild it immutably: Update (insert/filter) and Map (remap across
// edits).
package model

import "github.com/phoenix-tui/phoenix/decoration/internal/domain/value"

// Set is an immutable, B-tree-shaped node indexing decorations over a text
// span of Length. Local holds decorations stored at this node (leaves, or
// decorations spanning a child boundary), sorted by (From, Desc.Bias) in
// node-local coordinates. Children cover disjoint, adjacent sub-intervals
// starting at node offset 0; Size is the total decoration count across this
// node and every descendant.
//
// A Set is never mutated after construction. Empty, Of, Update, Map, and
// Grow are the only ways to produce one; unchanged subtrees are shared by
// reference between an old root and the new one returned alongside it.
type Set struct {
	Length   int
	Size     int
	Local    []value.Decoration
	Children []Set
}

// Empty is the zero-length, zero-size sentinel set.
var Empty = Set{}

// Of builds a set from a batch of decorations by delegating to Update
// against Empty.
func Of(decs ...value.Decoration) Set {
	return Empty.Update(UpdateOptions{Add: decs})
}

// Grow returns a copy of s with Length increased by delta and everything
// else unchanged. Used to absorb the span of a sibling dropped during
// rebalancing.
func (s Set) Grow(delta int) Set {
	return Set{Length: s.Length + delta, Size: s.Size, Local: s.Local, Children: s.Children}
}
