package model

import "github.com/phoenix-tui/phoenix/decoration/internal/domain/value"

// UpdateOptions controls one Update call. Filter, when non-nil, is invoked
// on every existing decoration whose interval intersects
// [FilterFrom, FilterTo]; returning false drops it. Decorations outside
// that window are preserved without calling Filter. Add is an arbitrary
// unsorted batch of new decorations.
type UpdateOptions struct {
	Add        []value.Decoration
	Filter     func(value.Decoration) bool
	FilterFrom int
	FilterTo   int
}

// Update inserts Add and drops decorations rejected by Filter, returning a
// new set. The returned set's Length is the larger of s.Length and the
// furthest addition's To. When there is nothing to add and no filter, s is
// returned unchanged — the structural-sharing fast path.
func (s Set) Update(opts UpdateOptions) Set {
	if len(opts.Add) == 0 && opts.Filter == nil {
		return s
	}

	add := append([]value.Decoration(nil), opts.Add...)
	value.SortDecorations(add)

	length := s.Length
	for _, d := range add {
		if d.To > length {
			length = d.To
		}
	}

	root := Set{Length: length, Size: s.Size, Local: s.Local, Children: s.Children}
	return updateNode(root, add, opts.Filter, opts.FilterFrom, opts.FilterTo)
}

// targetChildSize picks the chunk size used to group freshly added
// decorations into new child subtrees, per the BASE_NODE_SIZE tuning rule.
func targetChildSize(totalSize int) int {
	if size := totalSize / value.BaseNodeSize; size > value.BaseNodeSize {
		return size
	}
	return value.BaseNodeSize
}

// updateNode runs the recursive Update algorithm on one node. add is
// already sorted and expressed in node-local coordinates; filterFrom and
// filterTo are likewise node-local (and may fall outside [0, node.Length]
// when the window was translated down from an ancestor).
func updateNode(node Set, add []value.Decoration, filter func(value.Decoration) bool, filterFrom, filterTo int) Set {
	local := filterLocal(node.Local, filter, filterFrom, filterTo)

	newChildren := make([]Set, 0, len(node.Children))
	addIdx := 0
	childStart := 0
	for _, child := range node.Children {
		childEnd := childStart + child.Length

		var group []value.Decoration
		for addIdx < len(add) && add[addIdx].From < childEnd {
			d := add[addIdx]
			if d.To > childEnd {
				// Spans past this child's end: cannot live inside it.
				local = append(local, d)
			} else {
				group = append(group, d.Move(-childStart))
			}
			addIdx++
		}

		touchesFilter := filter != nil && filterTo >= childStart && filterFrom <= childEnd

		if len(group) == 0 && !touchesFilter {
			newChildren = append(newChildren, child)
		} else {
			newChildren = append(newChildren, updateNode(child, group, filter, filterFrom-childStart, filterTo-childStart))
		}
		childStart = childEnd
	}

	if addIdx < len(add) {
		tail := add[addIdx:]
		size := len(local)
		for _, c := range newChildren {
			size += c.Size
		}
		newChildren = append(newChildren, appendDecorations(tail, targetChildSize(size+len(tail)))...)
	}

	value.SortDecorations(local)

	size := len(local)
	for _, c := range newChildren {
		size += c.Size
	}

	if size <= value.BaseNodeSize {
		flat := collectWithOffset(Set{Local: local, Children: newChildren}, 0, nil)
		value.SortDecorations(flat)
		return Set{Length: node.Length, Size: len(flat), Local: flat}
	}

	local, newChildren = rebalanceChildren(local, newChildren)
	return Set{Length: node.Length, Size: size, Local: local, Children: newChildren}
}

// filterLocal drops decorations rejected by filter within
// [filterFrom, filterTo], copying only when something actually changes.
func filterLocal(local []value.Decoration, filter func(value.Decoration) bool, filterFrom, filterTo int) []value.Decoration {
	if filter == nil {
		return local
	}
	changed := false
	kept := make([]value.Decoration, 0, len(local))
	for _, d := range local {
		if d.To >= filterFrom && d.From <= filterTo && !filter(d) {
			changed = true
			continue
		}
		kept = append(kept, d)
	}
	if !changed {
		return local
	}
	return kept
}

// appendDecorations chunks a run of tail additions (sorted, all starting
// past the last existing child) into fresh leaf children of roughly
// chunkSize decorations each. A chunk's span grows to cover every
// decoration placed in it, so a decoration overlapping the next chunk is
// folded into the current one instead of being split across a boundary —
// children stay disjoint and adjacent without any decoration escaping.
func appendDecorations(adds []value.Decoration, chunkSize int) []Set {
	var children []Set
	i := 0
	for i < len(adds) {
		j := i + 1
		chunkTo := adds[i].To
		for j < len(adds) && (j-i < chunkSize || adds[j].From < chunkTo) {
			if adds[j].To > chunkTo {
				chunkTo = adds[j].To
			}
			j++
		}

		chunkFrom := adds[i].From
		local := make([]value.Decoration, j-i)
		for k := i; k < j; k++ {
			local[k-i] = adds[k].Move(-chunkFrom)
		}
		value.SortDecorations(local)
		children = append(children, Set{Length: chunkTo - chunkFrom, Size: len(local), Local: local})
		i = j
	}
	return children
}

// collectWithOffset depth-first concatenates every decoration under s into
// target, translated by offset plus cumulative child offsets.
func collectWithOffset(s Set, offset int, target []value.Decoration) []value.Decoration {
	for _, d := range s.Local {
		target = append(target, d.Move(offset))
	}
	childOffset := offset
	for _, c := range s.Children {
		target = collectWithOffset(c, childOffset, target)
		childOffset += c.Length
	}
	return target
}

// rebalanceChildren drops children left empty by filtering and merges
// adjacent small leaves back under BASE_NODE_SIZE. It does not implement
// the large-child unwrap or new-intermediate-node grouping passes — see
// DESIGN.md's "rebalanceChildren: omitted sub-passes" entry for why.
func rebalanceChildren(local []value.Decoration, children []Set) ([]value.Decoration, []Set) {
	return local, joinSmallSiblings(dropEmptyChildren(children))
}

// dropEmptyChildren drops size-0 children, donating their Length to the
// previous sibling so later siblings' cumulative offsets stay correct. A
// size-0 child with no previous sibling (it is the first child so far) and
// more children still to come cannot donate anywhere, so it is kept as an
// empty placeholder instead of dropped — without it, every following
// child's absolute offset would shift left by its Length. A size-0 first
// child that is also the last (the only child) is simply dropped: nothing
// else references its span.
func dropEmptyChildren(children []Set) []Set {
	out := make([]Set, 0, len(children))
	for i, c := range children {
		if c.Size == 0 {
			switch {
			case len(out) > 0:
				out[len(out)-1] = out[len(out)-1].Grow(c.Length)
			case c.Length > 0 && i < len(children)-1:
				out = append(out, c)
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

func joinSmallSiblings(children []Set) []Set {
	if len(children) == 0 {
		return children
	}
	out := make([]Set, 0, len(children))
	out = append(out, children[0])
	for _, c := range children[1:] {
		last := out[len(out)-1]
		if last.Children == nil && c.Children == nil && last.Size+c.Size <= value.BaseNodeSize {
			out[len(out)-1] = joinLeaves(last, c)
			continue
		}
		out = append(out, c)
	}
	return out
}

func joinLeaves(a, b Set) Set {
	local := make([]value.Decoration, 0, len(a.Local)+len(b.Local))
	local = append(local, a.Local...)
	for _, d := range b.Local {
		local = append(local, d.Move(a.Length))
	}
	value.SortDecorations(local)
	return Set{Length: a.Length + b.Length, Size: len(local), Local: local}
}
