package rowcol_test

import (
	"testing"

	"github.com/phoenix-tui/phoenix/cmd/decoview/rowcol"
)

func TestOffsetRoundTripsThroughPosition(t *testing.T) {
	lines := rowcol.Lines("hello\nworld\nfoo")

	cases := []struct {
		row, col int
	}{
		{0, 0},
		{0, 5},
		{1, 0},
		{1, 3},
		{2, 3},
	}

	for _, c := range cases {
		off := rowcol.Offset(lines, c.row, c.col)
		row, col := rowcol.Position(lines, off)
		if row != c.row || col != c.col {
			t.Fatalf("Offset(%d,%d)=%d, Position(%d) = (%d,%d), want (%d,%d)", c.row, c.col, off, off, row, col, c.row, c.col)
		}
	}
}

func TestOffsetCountsNewlines(t *testing.T) {
	lines := rowcol.Lines("ab\ncd")
	// "ab\ncd": a=0 b=1 \n=2 c=3 d=4
	if got := rowcol.Offset(lines, 1, 0); got != 3 {
		t.Fatalf("Offset(1,0) = %d, want 3", got)
	}
}

func TestOffsetClampsOutOfRange(t *testing.T) {
	lines := rowcol.Lines("abc")
	if got := rowcol.Offset(lines, 0, 100); got != 3 {
		t.Fatalf("Offset clamped col = %d, want 3", got)
	}
	if got := rowcol.Offset(lines, 100, 0); got != 3 {
		t.Fatalf("Offset clamped row = %d, want 3", got)
	}
}

func TestPositionClampsBeyondEnd(t *testing.T) {
	lines := rowcol.Lines("abc")
	row, col := rowcol.Position(lines, 1000)
	if row != 0 || col != 3 {
		t.Fatalf("Position(1000) = (%d,%d), want (0,3)", row, col)
	}
}
