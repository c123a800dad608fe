package model_test

import (
	"testing"

	"github.com/phoenix-tui/phoenix/decoration/internal/domain/model"
	"github.com/phoenix-tui/phoenix/decoration/internal/domain/value"
)

func TestMapEmptyChangesReturnsSame(t *testing.T) {
	s := model.Of(rangeDec(t, 0, 5))
	got := s.Map(nil)
	if got.Size != s.Size || got.Length != s.Length {
		t.Fatalf("Map(nil) changed the set")
	}
}

func TestMapExclusiveEndDoesNotAbsorbInsertion(t *testing.T) {
	d, _ := value.NewRange(5, 10, value.RangeSpec{})
	s := model.Of(d)

	mapped := s.Map([]value.Change{value.NewChange(10, 10, 3)})

	if mapped.Size != 1 {
		t.Fatalf("Size = %d, want 1", mapped.Size)
	}
	got := mapped.Local[0]
	if got.From != 5 || got.To != 10 {
		t.Fatalf("mapped = (%d,%d), want (5,10)", got.From, got.To)
	}
}

func TestMapInclusiveEndAbsorbsInsertion(t *testing.T) {
	d, _ := value.NewRange(5, 10, value.RangeSpec{InclusiveEnd: true})
	s := model.Of(d)

	mapped := s.Map([]value.Change{value.NewChange(10, 10, 3)})

	if mapped.Size != 1 {
		t.Fatalf("Size = %d, want 1", mapped.Size)
	}
	got := mapped.Local[0]
	if got.From != 5 || got.To != 13 {
		t.Fatalf("mapped = (%d,%d), want (5,13)", got.From, got.To)
	}
}

func TestMapFullyDeletedRangeDrops(t *testing.T) {
	d, _ := value.NewRange(5, 10, value.RangeSpec{})
	s := model.Of(d)

	mapped := s.Map([]value.Change{value.NewChange(4, 11, 0)})

	if mapped.Size != 0 {
		t.Fatalf("Size = %d, want 0", mapped.Size)
	}
}

func TestMapPointStickiness(t *testing.T) {
	left := value.NewPoint(10, value.PointSpec{Side: -1})
	right := value.NewPoint(10, value.PointSpec{Side: 1})

	sLeft := model.Of(left)
	sRight := model.Of(right)

	changes := []value.Change{value.NewChange(10, 10, 2)}

	mappedLeft := sLeft.Map(changes)
	mappedRight := sRight.Map(changes)

	if mappedLeft.Local[0].From != 10 {
		t.Fatalf("side=-1 point mapped From = %d, want 10", mappedLeft.Local[0].From)
	}
	if mappedRight.Local[0].From != 12 {
		t.Fatalf("side=1 point mapped From = %d, want 12", mappedRight.Local[0].From)
	}
}

// TestMapKeepsEmptyFirstChildAsPlaceholder mirrors
// TestRebalanceKeepsEmptyFirstChildAsPlaceholder for the Map side: a change
// entirely interior to the first child's span empties that child's only
// decoration without deleting the child's own span down to zero length, so
// the emptied child must be kept as a placeholder carrying its remaining
// Length rather than dropped — dropping it here would shift the second
// child's decorations left by its Length on every later traversal.
func TestMapKeepsEmptyFirstChildAsPlaceholder(t *testing.T) {
	childA := model.Set{Length: 100, Size: 1, Local: []value.Decoration{rangeDec(t, 40, 60)}}
	childB := model.Set{Length: 50, Size: 1, Local: []value.Decoration{rangeDec(t, 0, 10)}}
	root := model.Set{Length: 150, Size: 2, Children: []model.Set{childA, childB}}

	// Deletes [40,60) — wholly inside childA, touching neither childA's nor
	// childB's boundaries — which collapses childA's only decoration to an
	// empty interval and drops it, but leaves childA's own span (now 80
	// long) and childB untouched.
	mapped := root.Map([]value.Change{value.NewChange(40, 60, 0)})

	if len(mapped.Children) != 2 {
		t.Fatalf("got %d children, want 2 (the emptied first child must survive as a placeholder)", len(mapped.Children))
	}
	if mapped.Children[0].Size != 0 {
		t.Fatalf("first child Size = %d, want 0", mapped.Children[0].Size)
	}
	if mapped.Children[0].Length != 80 {
		t.Fatalf("first child Length = %d, want 80 (100 minus the 20 deleted characters)", mapped.Children[0].Length)
	}
	if mapped.Children[1].Size != 1 {
		t.Fatalf("second child Size = %d, want 1 (untouched)", mapped.Children[1].Size)
	}
	if mapped.Children[1].Length != 50 {
		t.Fatalf("second child Length = %d, want 50", mapped.Children[1].Length)
	}
	if mapped.Children[1].Local[0].From != 0 || mapped.Children[1].Local[0].To != 10 {
		t.Fatalf("second child's decoration = (%d,%d), want (0,10) unshifted",
			mapped.Children[1].Local[0].From, mapped.Children[1].Local[0].To)
	}
}

func TestMapAcrossManyChildrenPreservesSurvivors(t *testing.T) {
	decs := make([]value.Decoration, 0, 40)
	for i := 0; i < 40; i++ {
		from := i * 10
		decs = append(decs, rangeDec(t, from, from+5))
	}
	s := model.Of(decs...)

	// Insert 4 characters at the very start; every decoration should shift
	// right by 4 and none should be dropped.
	mapped := s.Map([]value.Change{value.NewChange(0, 0, 4)})

	if mapped.Size != 40 {
		t.Fatalf("Size = %d, want 40", mapped.Size)
	}
	if mapped.Length != s.Length+4 {
		t.Fatalf("Length = %d, want %d", mapped.Length, s.Length+4)
	}
}
