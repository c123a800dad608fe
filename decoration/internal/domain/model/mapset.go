package model

import "github.com/phoenix-tui/phoenix/decoration/internal/domain/value"

// Map remaps every decoration in s through changes, returning a set
// positioned in the post-edit coordinate frame. A mapped range decoration
// that collapses to an invalid interval (from >= to) is dropped silently —
// deleting annotated text is expected, not an error. Empty fast paths: no
// changes, or s itself carries nothing.
func (s Set) Map(changes []value.Change) Set {
	if len(changes) == 0 || s.Size == 0 {
		return s
	}

	newEnd := value.MapPos(s.Length, changes, 1)
	result, _ := mapNode(s, changes, 0, 0, newEnd)
	return result
}

// mapNode runs the recursive Map algorithm on one node. oldStart is the
// node's absolute start before the edit; newStart and newEnd are its span
// in the post-edit frame. It returns the remapped node plus the list of
// decorations that no longer fit within it ("escaped"), still expressed
// relative to newStart, for the caller to re-home or propagate further up.
func mapNode(node Set, changes []value.Change, oldStart, newStart, newEnd int) (Set, []value.Decoration) {
	newLength := newEnd - newStart
	var newLocal []value.Decoration
	var escaped []value.Decoration

	for _, d := range node.Local {
		mappedFrom := value.MapPos(oldStart+d.From, changes, d.Desc.Bias)
		mappedTo := value.MapPos(oldStart+d.To, changes, d.Desc.EndBias)
		if !d.IsPoint() && mappedFrom >= mappedTo {
			continue
		}

		nd := value.Decoration{From: mappedFrom - newStart, To: mappedTo - newStart, Desc: d.Desc}
		if nd.From >= 0 && nd.To <= newLength {
			newLocal = append(newLocal, nd)
		} else {
			escaped = append(escaped, nd)
		}
	}

	newChildren := make([]Set, 0, len(node.Children))
	oldChildStart := 0
	for _, child := range node.Children {
		oldChildAbsStart := oldStart + oldChildStart
		oldChildAbsEnd := oldChildAbsStart + child.Length
		newChildAbsStart := value.MapPos(oldChildAbsStart, changes, 1)
		newChildAbsEnd := value.MapPos(oldChildAbsEnd, changes, 1)

		var mappedChild Set
		var childEscaped []value.Decoration
		if value.TouchesChange(oldChildAbsStart, oldChildAbsEnd, changes) {
			mappedChild, childEscaped = mapNode(child, changes, oldChildAbsStart, newChildAbsStart, newChildAbsEnd)
		} else {
			mappedChild = Set{Length: newChildAbsEnd - newChildAbsStart, Size: child.Size, Local: child.Local, Children: child.Children}
		}

		for _, e := range childEscaped {
			translated := e.Move(newChildAbsStart - newStart)
			if translated.From >= 0 && translated.To <= newLength {
				newLocal = append(newLocal, translated)
			} else {
				escaped = append(escaped, translated)
			}
		}

		newChildren = append(newChildren, mappedChild)
		oldChildStart += child.Length
	}

	newChildren = dropEmptyMappedChildren(newChildren)
	value.SortDecorations(newLocal)

	size := len(newLocal)
	for _, c := range newChildren {
		size += c.Size
	}

	return Set{Length: newLength, Size: size, Local: newLocal, Children: newChildren}, escaped
}

// dropEmptyMappedChildren removes children a recursive mapNode call emptied
// out entirely, donating any remaining length to the previous sibling so
// coverage is not silently lost. A size-0 child with no preceding sibling
// (the first child so far) and more children still to come cannot donate
// anywhere, so it is kept as an empty placeholder instead of dropped —
// otherwise every following child's absolute offset would shift left by
// its Length. A size-0 first child that is also the last (the only child)
// is simply dropped: nothing else references its span.
func dropEmptyMappedChildren(children []Set) []Set {
	out := make([]Set, 0, len(children))
	for i, c := range children {
		if c.Size == 0 {
			switch {
			case len(out) > 0:
				if c.Length > 0 {
					out[len(out)-1] = out[len(out)-1].Grow(c.Length)
				}
			case c.Length > 0 && i < len(children)-1:
				out = append(out, c)
			}
			continue
		}
		out = append(out, c)
	}
	return out
}
