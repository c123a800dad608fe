// Package decoration provides a positional decoration index for Phoenix
// TUI framework: an immutable, persistent tree that indexes text
// annotations over a linear integer offset space.
//
// # Overview
//
// Package decoration is the substrate that lets an editor component attach
// styling, widgets, and collapse information to text without rebuilding
// per keystroke:
//   - Range and point decorations, each carrying an attribute/tag spec
//   - An immutable B-tree-shaped Set indexing decorations by position
//   - Update: insert new decorations and filter existing ones
//   - Map: remap an entire set across a sequence of text edits
//   - SpansInRange: merge overlapping range decorations into non-overlapping spans
//
// # Features
//
//   - Fully immutable and persistent: every operation returns a new Set,
//     structure-shared with the old one where nothing changed
//   - Bias-aware position mapping so inclusive endpoints and sticky points
//     behave correctly across insertions at their boundary
//   - Automatic rebalancing keeps large sets from degenerating into a
//     single oversized local list
//   - No text storage: positions are opaque integer offsets into whatever
//     document the caller maintains
//
// # Quick Start
//
//	import "github.com/phoenix-tui/phoenix/decoration"
//
//	d, err := decoration.Range(5, 10, decoration.RangeSpec{
//	    Attributes: map[string]string{"class": "highlight"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	set := decoration.Of(d)
//
//	// Remap across an edit that inserts 3 characters at position 10.
//	edited := set.Map([]decoration.Change{decoration.NewChange(10, 10, 3)})
//
//	spans := decoration.SpansInRange([]decoration.Set{edited}, 0, edited.Length)
//
// # Architecture
//
// This package follows Domain-Driven Design (DDD):
//   - internal/domain/value   - Decoration specs, descriptors, the Change/position-mapper primitives
//   - internal/domain/model   - The Set aggregate and its Update/Map algorithms
//   - internal/domain/service - Cross-set iteration and the merged-spans query
//   - decoration.go (this file) - Public API (wrapper types)
//
// # Concurrency
//
// Every Set is immutable once constructed; Update, Map, and Grow never
// mutate their receiver. A reader holding an older Set continues to
// observe a consistent view no matter what later operations derive from
// it, so a Set is safe to share freely across goroutines.
package decoration

import (
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/model"
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/service"
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/value"
)

// RangeSpec is the specification for a range decoration. See
// internal/domain/value.RangeSpec for field semantics.
type RangeSpec = value.RangeSpec

// PointSpec is the specification for a point decoration. See
// internal/domain/value.PointSpec for field semantics.
type PointSpec = value.PointSpec

// Decoration is an immutable annotation over an interval, or a single
// position when it is a point.
type Decoration = value.Decoration

// Change is one text edit: the old interval [From, To) replaced by
// InsertedLen characters. It is the one external collaborator this
// package depends on; SimpleChange below is a ready-made implementation
// for callers with no richer change representation of their own.
type Change = value.Change

// SimpleChange is a minimal Change implementation.
type SimpleChange = value.SimpleChange

// NewChange builds a SimpleChange replacing [from, to) with insertedLen
// characters.
func NewChange(from, to, insertedLen int) SimpleChange {
	return value.NewChange(from, to, insertedLen)
}

// Range builds a range decoration over [from, to). It fails when
// from >= to.
func Range(from, to int, spec RangeSpec) (Decoration, error) {
	return value.NewRange(from, to, spec)
}

// Point builds a point decoration at pos. It always succeeds.
func Point(pos int, spec PointSpec) Decoration {
	return value.NewPoint(pos, spec)
}

// Set is an immutable tree indexing decorations over a text span. The
// zero value is Empty.
type Set = model.Set

// Empty is the zero-length, zero-size sentinel set.
var Empty = model.Empty

// Of builds a set from a batch of decorations.
func Of(decs ...Decoration) Set {
	return model.Of(decs...)
}

// UpdateOptions controls a Set.Update call.
type UpdateOptions = model.UpdateOptions

// DecoratedRange is one non-overlapping output span from SpansInRange.
type DecoratedRange = service.DecoratedRange

// SpansInRange merges every range decoration with attributes, a tag name,
// or a collapsed flag across sets into a contiguous, non-overlapping
// sequence of DecoratedRanges covering [from, to].
func SpansInRange(sets []Set, from, to int) []DecoratedRange {
	return service.DecoratedSpansInRange(sets, from, to)
}
