package value

// Big is the magnitude used to encode an "infinite" bias for inclusive range
// endpoints. It dominates any realistic PointSpec.Side value, so a range's
// bias and a point's side coexist in a single signed-integer sort/mapping
// key without colliding.
const Big = 2_000_000_000

// BaseNodeSize is the largest subtree size a DecorationSet node may hold
// before it is required to have children. Below this size a node is kept
// as a flat leaf.
const BaseNodeSize = 32
