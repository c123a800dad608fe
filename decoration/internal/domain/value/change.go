package value

// Change is one edit to the document: the old interval [From, To) is
// replaced by InsertedLen characters. The decoration domain never
// constructs a Change itself — it is supplied by the surrounding editor's
// change model — but it needs a concrete implementation for its own tests
// and for callers with no richer change representation of their own, so
// SimpleChange below implements it directly.
type Change interface {
	MapPos(pos, assoc int) int
	From() int
	To() int
	InsertedLen() int
}

// MapPos folds pos through an ordered change list, left to right.
func MapPos(pos int, changes []Change, assoc int) int {
	for _, c := range changes {
		pos = c.MapPos(pos, assoc)
	}
	return pos
}

// TouchesChange reports whether any change's old range intersects
// [from, to]. The running window is shifted by the net length delta of
// every change found to lie entirely before it, so that later changes —
// expressed in the document frame produced by earlier ones — are compared
// in the same coordinate frame as the fixed window.
func TouchesChange(from, to int, changes []Change) bool {
	curFrom, curTo := from, to
	for _, c := range changes {
		cFrom, cTo := c.From(), c.To()
		if cFrom <= curTo && cTo >= curFrom {
			return true
		}
		if cTo <= curFrom {
			delta := c.InsertedLen() - (cTo - cFrom)
			curFrom += delta
			curTo += delta
		}
	}
	return false
}

// SimpleChange is a minimal Change implementation: replace [from, to) with
// insertedLen characters. It implements the standard sticky-boundary
// convention — assoc < 0 sticks to the position before the edit, assoc >= 0
// sticks to the position after it — which is what lets RangeDesc's bias
// encode "absorb an adjacent insertion" and PointDesc's side encode
// "stick left/right of an insertion".
type SimpleChange struct {
	from        int
	to          int
	insertedLen int
}

// NewChange builds a SimpleChange replacing [from, to) with insertedLen
// characters.
func NewChange(from, to, insertedLen int) SimpleChange {
	return SimpleChange{from: from, to: to, insertedLen: insertedLen}
}

// From returns the start of the replaced interval.
func (c SimpleChange) From() int { return c.from }

// To returns the end of the replaced interval.
func (c SimpleChange) To() int { return c.to }

// InsertedLen returns the length of the replacement text.
func (c SimpleChange) InsertedLen() int { return c.insertedLen }

// MapPos maps pos across this single change.
func (c SimpleChange) MapPos(pos, assoc int) int {
	if pos < c.from || (pos == c.from && assoc < 0) {
		return pos
	}
	if pos > c.to || (pos == c.to && assoc >= 0) {
		return pos + c.insertedLen - (c.to - c.from)
	}
	if assoc < 0 {
		return c.from
	}
	return c.from + c.insertedLen
}
