package service

import (
	"container/heap"

	"github.com/phoenix-tui/phoenix/decoration/internal/domain/model"
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/value"
)

// DecoratedRange is one non-overlapping output span: the merge of every
// range decoration active over [From, To).
type DecoratedRange struct {
	From       int
	To         int
	TagName    string
	Attributes map[string]string
}

// activeEntry is a range decoration currently active during the sweep,
// tagged with a monotonic id so it can be removed by identity rather than
// by value — two decorations can otherwise compare equal.
type activeEntry struct {
	id  int
	dec value.Decoration
}

// DecoratedSpansInRange merges every range decoration with AffectsSpans
// across sets into a contiguous, non-overlapping sequence of
// DecoratedRanges covering [from, to]. It sweeps a min-heap seeded from
// each set's Iterator, in the order described by the component design:
// pop the smallest item, emit a span whenever the active set changes, and
// track ends alongside starts in the same heap.
func DecoratedSpansInRange(sets []model.Set, from, to int) []DecoratedRange {
	h := &itemHeap{}
	heap.Init(h)
	for _, s := range sets {
		addIterToHeap(h, NewIterator(s, 0), from)
	}

	var result []DecoratedRange
	var active []activeEntry
	pos := from
	nextID := 0

loop:
	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)

		switch item.kind {
		case localSetItem:
			d := item.cursor.Current()
			absFrom := item.cursor.Offset + d.From
			absTo := item.cursor.Offset + d.To

			item.cursor.Index++
			if !item.cursor.Done() {
				nd := item.cursor.Current()
				heap.Push(h, heapItem{
					kind:    localSetItem,
					heapPos: item.cursor.Offset + nd.From,
					bias:    nd.Desc.Bias,
					cursor:  item.cursor,
					iter:    item.iter,
				})
			} else {
				addIterToHeap(h, item.iter, 0)
			}

			if absTo < from {
				continue
			}
			if absFrom > to {
				break loop
			}

			if d.Desc.Kind != value.RangeKind || !d.Desc.AffectsSpans {
				continue
			}

			if absFrom > pos {
				result = append(result, buildRange(pos, absFrom, active))
				pos = absFrom
			}

			id := nextID
			nextID++
			active = append(active, activeEntry{id: id, dec: value.Decoration{From: absFrom, To: absTo, Desc: d.Desc}})
			heap.Push(h, heapItem{kind: endItem, heapPos: absTo, bias: d.Desc.EndBias, endID: id})

		case endItem:
			if item.heapPos >= to {
				break loop
			}
			if item.heapPos > pos {
				result = append(result, buildRange(pos, item.heapPos, active))
				pos = item.heapPos
			}
			active = removeActive(active, item.endID)
		}
	}

	if pos < to {
		result = append(result, buildRange(pos, to, active))
	}
	return result
}

func removeActive(active []activeEntry, id int) []activeEntry {
	for i, a := range active {
		if a.id == id {
			return append(active[:i], active[i+1:]...)
		}
	}
	return active
}

// buildRange merges every active decoration's attributes by overlay: a
// later tagName wins; style values are joined with ";", class values with
// a space, and everything else overwrites.
//
// When an active decoration is collapsed, the outermost one (the earliest
// activated, per active's append order) replaces the normal merge with a
// single synthetic "widget" attribute naming its tagName (or "…" if it has
// none). This does not additionally fold every span across a collapsed
// range's full extent into one DecoratedRange — that needs buffering the
// sweep doesn't otherwise require, and the source's own handling here is
// marked incomplete.
func buildRange(from, to int, active []activeEntry) DecoratedRange {
	r := DecoratedRange{From: from, To: to}

	for _, a := range active {
		if a.dec.Desc.Kind == value.RangeKind && a.dec.Desc.Range.Collapsed {
			widget := a.dec.Desc.Range.TagName
			if widget == "" {
				widget = "…"
			}
			r.Attributes = map[string]string{"widget": widget}
			return r
		}
	}

	for _, a := range active {
		d := a.dec.Desc.Range
		if d.TagName != "" {
			r.TagName = d.TagName
		}
		for k, v := range d.Attributes {
			if r.Attributes == nil {
				r.Attributes = map[string]string{}
			}
			switch k {
			case "style":
				if existing := r.Attributes["style"]; existing != "" {
					r.Attributes["style"] = existing + ";" + v
				} else {
					r.Attributes["style"] = v
				}
			case "class":
				if existing := r.Attributes["class"]; existing != "" {
					r.Attributes["class"] = existing + " " + v
				} else {
					r.Attributes["class"] = v
				}
			default:
				r.Attributes[k] = v
			}
		}
	}
	return r
}
