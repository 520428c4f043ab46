package textwarp

import (
	"math"
	"strings"
)

// Orientation is the winding direction of a path.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationClockwise
	OrientationCounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case OrientationClockwise:
		return "cw"
	case OrientationCounterClockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// cornerTurnThreshold is the turning angle between consecutive edges above
// which a sample counts as a corner.
const cornerTurnThreshold = 25 * math.Pi / 180

// closureProximityRatio: an open-looking path still counts as closed when
// its endpoints lie within this fraction of the larger axis range.
const closureProximityRatio = 0.05

// PathFeatures is a read-only snapshot of geometric features derived from a
// sample sequence, recomputed on every call to [ExtractFeatures].
type PathFeatures struct {
	Closed     bool
	PointCount int

	XRange float64
	YRange float64

	// Least-squares baseline through the samples.
	BaselineSlope     float64
	BaselineIntercept float64

	// Sign changes of the discrete edge slope along the path. Vertical
	// edges are treated as ±infinite slope for sign purposes.
	CurvatureSignChanges int

	PeakCount   int
	TroughCount int
	CornerCount int

	// Zero crossings of the mean-centered y series.
	ZeroCrossings int

	// Command histogram from the raw path text; both stay zero when no
	// text was supplied.
	ArcCommands  int
	LineCommands int

	Orientation Orientation

	// Half the baseline-detrended y extent.
	Amplitude float64
	MeanY     float64
	StdY      float64
}

// ExtractFeatures derives path features from a sample sequence and,
// optionally, the original path data text. Passing an empty string degrades
// gracefully to numeric-only heuristics.
func ExtractFeatures(points []PathPoint, pathData string) PathFeatures {
	feat := PathFeatures{PointCount: len(points)}
	if len(points) == 0 {
		return feat
	}

	bounds := boundsOf(points)
	feat.XRange = bounds.Width()
	feat.YRange = bounds.Height()

	var sy, syy float64
	for _, pt := range points {
		sy += pt.Y
		syy += pt.Y * pt.Y
	}
	n := float64(len(points))
	feat.MeanY = sy / n
	feat.StdY = math.Sqrt(math.Max(0, syy/n-feat.MeanY*feat.MeanY))

	slope, intercept, ok := linearBaseline(points)
	if ok {
		feat.BaselineSlope = slope
		feat.BaselineIntercept = intercept
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		d := pt.Y - (slope*pt.X + intercept)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	feat.Amplitude = (hi - lo) / 2

	feat.CurvatureSignChanges = slopeSignChanges(points)
	feat.PeakCount, feat.TroughCount = countExtrema(points)
	feat.CornerCount = countCorners(points)
	feat.ZeroCrossings = zeroCrossings(points, feat.MeanY)
	feat.Orientation = orientationOf(points, feat.XRange, feat.YRange)

	feat.Closed = strings.ContainsAny(pathData, "Zz")
	if !feat.Closed {
		gap := points[0].Point().Distance(points[len(points)-1].Point())
		if m := max(feat.XRange, feat.YRange); m > 0 && gap < closureProximityRatio*m {
			feat.Closed = true
		}
	}

	if pathData != "" {
		feat.ArcCommands = strings.Count(pathData, "A") + strings.Count(pathData, "a")
		feat.LineCommands = strings.Count(pathData, "L") + strings.Count(pathData, "l")
	}
	return feat
}

// slopeSignChanges counts sign changes of the discrete edge slope dy/dx
// between consecutive samples. A vertical edge contributes an infinite slope
// whose sign is that of dy; zero-slope edges carry the previous sign
// forward.
func slopeSignChanges(points []PathPoint) int {
	var count int
	var prev float64
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		var s float64
		if dx == 0 {
			if dy == 0 {
				continue
			}
			s = math.Inf(1)
			if dy < 0 {
				s = math.Inf(-1)
			}
		} else {
			s = dy / dx
		}
		if s == 0 {
			continue
		}
		if prev != 0 && (s > 0) != (prev > 0) {
			count++
		}
		prev = s
	}
	return count
}

// countExtrema counts local 3-point maxima and minima of y.
func countExtrema(points []PathPoint) (peaks, troughs int) {
	for i := 1; i < len(points)-1; i++ {
		y0, y1, y2 := points[i-1].Y, points[i].Y, points[i+1].Y
		if y1 > y0 && y1 > y2 {
			peaks++
		} else if y1 < y0 && y1 < y2 {
			troughs++
		}
	}
	return peaks, troughs
}

// countCorners counts samples where the turning angle between the incoming
// and outgoing edges exceeds the corner threshold.
func countCorners(points []PathPoint) int {
	var corners int
	for i := 1; i < len(points)-1; i++ {
		v1 := points[i].Point().Sub(points[i-1].Point())
		v2 := points[i+1].Point().Sub(points[i].Point())
		if v1.Hypot2() == 0 || v2.Hypot2() == 0 {
			continue
		}
		turn := math.Atan2(v1.Cross(v2), v1.Dot(v2))
		if math.Abs(turn) > cornerTurnThreshold {
			corners++
		}
	}
	return corners
}

// zeroCrossings counts sign changes of the mean-centered y series.
func zeroCrossings(points []PathPoint, meanY float64) int {
	centered := make([]float64, len(points))
	for i, pt := range points {
		centered[i] = pt.Y - meanY
	}
	return signChanges(centered)
}

// orientationOf derives the winding direction from the signed polygon area
// of the sample sequence. The area convention follows SVG's y-down space:
// positive signed area winds clockwise.
func orientationOf(points []PathPoint, xRange, yRange float64) Orientation {
	if len(points) < 3 {
		return OrientationUnknown
	}
	var area float64
	for i := range points {
		p := points[i]
		q := points[(i+1)%len(points)]
		area += p.X*q.Y - q.X*p.Y
	}
	area /= 2
	// Near-zero area relative to the path extent is inconclusive.
	if math.Abs(area) < 1e-6*math.Max(1, xRange*yRange) {
		return OrientationUnknown
	}
	if area > 0 {
		return OrientationClockwise
	}
	return OrientationCounterClockwise
}
