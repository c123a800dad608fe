// Package service holds the stateless algorithms that read across one or
// more DecorationSets: ordered iteration and the merged-spans query.
package service

import (
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/model"
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/value"
)

// LocalSet is a cursor over one node's Local array, along with the
// absolute offset of that node's start in the document.
type LocalSet struct {
	Offset int
	Items  []value.Decoration
	Index  int
}

// Current returns the decoration the cursor is positioned at.
func (l *LocalSet) Current() value.Decoration { return l.Items[l.Index] }

// Done reports whether the cursor has consumed every decoration.
func (l *LocalSet) Done() bool { return l.Index >= len(l.Items) }

type frame struct {
	set    model.Set
	offset int
}

// Iterator yields a set's nodes' Local arrays in left-first, position
// order. Next(skip) descends depth-first, bypassing any child whose
// absolute span ends at or before skip.
//
// This is a simplified stand-in for the back-pointer-chained cursor the
// source describes: an explicit stack gives the same left-first,
// emit-local-before-descending order without the terminal-leaf
// optimization, which is an internal efficiency detail rather than an
// observable part of the traversal.
type Iterator struct {
	stack []frame
}

// NewIterator seeds an iterator over set, rooted at the given absolute
// offset.
func NewIterator(set model.Set, offset int) *Iterator {
	return &Iterator{stack: []frame{{set: set, offset: offset}}}
}

// Next returns the next node carrying a nonempty Local array, skipping any
// child subtree that lies entirely at or before the absolute position
// skip. terminal reports whether that node is childless (a leaf) — the
// point at which a caller walking the spine down from an ancestor should
// stop, since every node along the way has already been visited. It
// returns ok=false once the iterator is exhausted.
func (it *Iterator) Next(skip int) (ls LocalSet, terminal bool, ok bool) {
	for len(it.stack) > 0 {
		n := len(it.stack) - 1
		f := it.stack[n]
		it.stack = it.stack[:n]

		starts := make([]int, len(f.set.Children))
		cum := 0
		for i, c := range f.set.Children {
			starts[i] = cum
			cum += c.Length
		}
		for i := len(f.set.Children) - 1; i >= 0; i-- {
			child := f.set.Children[i]
			childEnd := f.offset + starts[i] + child.Length
			if skip > childEnd {
				continue
			}
			it.stack = append(it.stack, frame{set: child, offset: f.offset + starts[i]})
		}

		if len(f.set.Local) > 0 {
			return LocalSet{Offset: f.offset, Items: f.set.Local}, len(f.set.Children) == 0, true
		}
	}
	return LocalSet{}, false, false
}
