package textwarp

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at parameter t using the Bernstein basis.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Derivative returns the analytic first derivative at parameter t:
// 2(1−t)(P1−P0) + 2t(P2−P1).
func (q QuadBez) Derivative(t float64) Vec2 {
	d0 := q.P1.Sub(q.P0).Mul(2.0 * (1.0 - t))
	d1 := q.P2.Sub(q.P1).Mul(2.0 * t)
	return d0.Add(d1)
}

// ControlPolygonLength returns the summed edge lengths of the control
// polygon. This is an upper bound on the true arc length; it is used for
// sampling-density allocation, never for exact geometry.
func (q QuadBez) ControlPolygonLength() float64 {
	return q.P1.Sub(q.P0).Hypot() + q.P2.Sub(q.P1).Hypot()
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Seg returns the curve as a [PathSegment], with its control-polygon length
// estimate precomputed.
func (q QuadBez) Seg() PathSegment {
	return PathSegment{
		Kind:   QuadKind,
		P0:     q.P0,
		P1:     q.P1,
		P2:     q.P2,
		Length: q.ControlPolygonLength(),
	}
}
