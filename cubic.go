package textwarp

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t using the Bernstein basis.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(c.P0).Mul(mt * mt * mt)
	v = v.Add(Vec2(c.P1).Mul(3.0 * mt * mt * t))
	v = v.Add(Vec2(c.P2).Mul(3.0 * mt * t * t))
	v = v.Add(Vec2(c.P3).Mul(t * t * t))
	return Point(v)
}

// Derivative returns the analytic first derivative at parameter t:
// 3(1−t)²(P1−P0) + 6(1−t)t(P2−P1) + 3t²(P3−P2).
func (c CubicBez) Derivative(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3.0 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6.0 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3.0 * t * t)
	return d0.Add(d1).Add(d2)
}

// ControlPolygonLength returns the summed edge lengths of the control
// polygon. This is an upper bound on the true arc length; it is used for
// sampling-density allocation, never for exact geometry.
func (c CubicBez) ControlPolygonLength() float64 {
	return c.P1.Sub(c.P0).Hypot() +
		c.P2.Sub(c.P1).Hypot() +
		c.P3.Sub(c.P2).Hypot()
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Seg returns the curve as a [PathSegment], with its control-polygon length
// estimate precomputed.
func (c CubicBez) Seg() PathSegment {
	return PathSegment{
		Kind:   CubicKind,
		P0:     c.P0,
		P1:     c.P1,
		P2:     c.P2,
		P3:     c.P3,
		Length: c.ControlPolygonLength(),
	}
}
