package textwarp

import (
	"fmt"
	"math"
	"sort"
)

// PathPoint is a single sample on a path: a position, the tangent angle at
// that position, and the distance travelled along the path to reach it.
//
// Within any sequence produced by [SamplePath], Dist is non-decreasing.
// PathPoint values are never mutated after construction.
type PathPoint struct {
	X float64
	Y float64
	// Tangent is the tangent angle in radians, as atan2(Δy, Δx).
	Tangent float64
	// Dist is the distance along the path at which this sample was taken.
	Dist float64
}

func (pp PathPoint) String() string {
	return fmt.Sprintf("(%g, %g; θ=%g, s=%g)", pp.X, pp.Y, pp.Tangent, pp.Dist)
}

// Point returns the sample's position.
func (pp PathPoint) Point() Point {
	return Point{X: pp.X, Y: pp.Y}
}

// Normal returns the normal angle at the sample, the tangent rotated by π/2,
// normalized into [0, 2π).
func (pp PathPoint) Normal() float64 {
	return normalizeAngle(pp.Tangent + math.Pi/2)
}

// PointAtDistance returns the interpolated sample at the given distance
// along a monotonic sample sequence.
//
// Targets before the first or after the last sample return that boundary
// sample unchanged. Otherwise the position is linearly interpolated between
// the bracketing pair and the tangent angle is interpolated the short way
// around the circle.
//
// An empty sequence returns the zero sample.
func PointAtDistance(points []PathPoint, dist float64) PathPoint {
	if len(points) == 0 {
		return PathPoint{}
	}
	if dist <= points[0].Dist {
		return points[0]
	}
	last := points[len(points)-1]
	if dist >= last.Dist {
		return last
	}
	// First sample with Dist >= dist; the predecessor brackets from below.
	i := sort.Search(len(points), func(i int) bool {
		return points[i].Dist >= dist
	})
	hi := points[i]
	lo := points[i-1]
	span := hi.Dist - lo.Dist
	if span == 0 {
		return lo
	}
	t := (dist - lo.Dist) / span
	return PathPoint{
		X:       lo.X + (hi.X-lo.X)*t,
		Y:       lo.Y + (hi.Y-lo.Y)*t,
		Tangent: lerpAngle(lo.Tangent, hi.Tangent, t),
		Dist:    dist,
	}
}

// CurvatureAt returns a discrete curvature estimate at sample index i, using
// the cross product of the two displacement vectors meeting at the sample,
// divided by the product of their magnitudes.
//
// Boundary samples and zero-length displacements yield 0.
func CurvatureAt(points []PathPoint, i int) float64 {
	if i <= 0 || i >= len(points)-1 {
		return 0
	}
	v1 := points[i].Point().Sub(points[i-1].Point())
	v2 := points[i+1].Point().Sub(points[i].Point())
	m1 := v1.Hypot()
	m2 := v2.Hypot()
	if m1 == 0 || m2 == 0 {
		return 0
	}
	return v1.Cross(v2) / (m1 * m2)
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// lerpAngle interpolates between two angles along the shortest arc.
func lerpAngle(a, b, t float64) float64 {
	a = normalizeAngle(a)
	b = normalizeAngle(b)
	d := b - a
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return normalizeAngle(a + d*t)
}
