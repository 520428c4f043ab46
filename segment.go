package textwarp

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k PathSegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	default:
		return "InvalidPathSegment"
	}
}

// PathSegment represents a segment of a path. This type acts as a sort of
// tagged union representing all possible segment types ([Line], [QuadBez],
// and [CubicBez]).
//
// We don't use an interface for PathSegment because the sampler iterates
// large numbers of segments and we don't want to allocate for each one.
//
// Length is precomputed at construction time: the exact euclidean distance
// for lines, and the control-polygon edge sum for Béziers. The Bézier value
// is an upper-bound approximation; it drives sampling-density allocation and
// the cumulative-length table, not exact geometry.
type PathSegment struct {
	Kind   PathSegmentKind
	P0     Point
	P1     Point
	P2     Point
	P3     Point
	Length float64
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is
// only valid when Kind == QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only
// valid when Kind == CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

// Eval evaluates the segment at parameter t. Generally, t is in the range
// [0, 1].
func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Derivative returns the segment's first derivative at parameter t.
func (seg PathSegment) Derivative(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Derivative(t)
	case QuadKind:
		return seg.Quad().Derivative(t)
	case CubicKind:
		return seg.Cubic().Derivative(t)
	default:
		return Vec2{}
	}
}

// Tangent returns the tangent angle at parameter t, in radians. A
// zero-magnitude derivative (degenerate geometry, coincident control points)
// yields angle 0 rather than NaN.
func (seg PathSegment) Tangent(t float64) float64 {
	d := seg.Derivative(t)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return d.Angle()
}

func (seg PathSegment) Start() Point {
	switch seg.Kind {
	case LineKind, QuadKind, CubicKind:
		return seg.P0
	default:
		return Point{}
	}
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// PointAt evaluates the segment at parameter t and stamps the resulting
// sample with the given distance along the whole path. The segment does not
// compute distances itself; the caller supplies them.
func (seg PathSegment) PointAt(t, dist float64) PathPoint {
	pt := seg.Eval(t)
	return PathPoint{
		X:       pt.X,
		Y:       pt.Y,
		Tangent: seg.Tangent(t),
		Dist:    dist,
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

// TotalLength returns the sum of the precomputed segment lengths.
func TotalLength(segs []PathSegment) float64 {
	var sum float64
	for _, seg := range segs {
		sum += seg.Length
	}
	return sum
}
