package value

// Kind tags a Desc as describing a range or a point decoration. Desc is a
// closed sum type over the two: callers switch on Kind rather than calling
// virtual methods, so adding a third kind is a compile-visible exercise
// everywhere a switch lacks a default.
type Kind int

const (
	// RangeKind marks a Desc derived from a RangeSpec.
	RangeKind Kind = iota
	// PointKind marks a Desc derived from a PointSpec.
	PointKind
)

// Desc is the descriptor distilled once per RangeSpec/PointSpec: the spec
// itself plus the bias values used for position mapping and sort order.
//
// For RangeKind, Bias governs the start endpoint and EndBias the end
// endpoint; AffectsSpans is true iff the range carries attributes, a tag
// name, or is collapsed. For PointKind, Bias is the PointSpec's Side and
// EndBias equals Bias (points have no second endpoint); AffectsSpans is
// always false — points never contribute to the merged span output.
type Desc struct {
	Kind         Kind
	Range        RangeSpec
	Point        PointSpec
	Bias         int
	EndBias      int
	AffectsSpans bool
}

// NewRangeDesc derives a Desc from a RangeSpec.
func NewRangeDesc(spec RangeSpec) Desc {
	bias := Big
	if spec.InclusiveStart {
		bias = -Big
	}
	endBias := -Big
	if spec.InclusiveEnd {
		endBias = Big
	}
	affects := spec.TagName != "" || spec.Collapsed || len(spec.Attributes) > 0
	return Desc{
		Kind:         RangeKind,
		Range:        spec,
		Bias:         bias,
		EndBias:      endBias,
		AffectsSpans: affects,
	}
}

// NewPointDesc derives a Desc from a PointSpec.
func NewPointDesc(spec PointSpec) Desc {
	return Desc{
		Kind:    PointKind,
		Point:   spec,
		Bias:    spec.Side,
		EndBias: spec.Side,
	}
}

// IsPoint reports whether this descriptor belongs to a point decoration.
func (d Desc) IsPoint() bool {
	return d.Kind == PointKind
}
