package textwarp

import "math"

// SamplingMethod selects the sampler algorithm and its default density
// bounds.
type SamplingMethod int

const (
	// ArcLengthSampling is the primary, deterministic contract: exactly N
	// points, uniformly spaced in total arc length, independent of segment
	// boundaries. It is the zero value.
	ArcLengthSampling SamplingMethod = iota
	// UniformSampling samples every segment with the same number of points,
	// uniformly in each segment's own parameter.
	UniformSampling
	// AdaptiveSampling uses the arc-length algorithm with the legacy
	// density bounds.
	AdaptiveSampling
	// ProportionalSampling is the legacy contract: per-segment sample
	// counts proportional to each segment's share of the total length,
	// uniform in each segment's own parameter. Spacing is uniform only
	// within a segment.
	ProportionalSampling
)

func (m SamplingMethod) String() string {
	switch m {
	case ArcLengthSampling:
		return "ArcLength"
	case UniformSampling:
		return "Uniform"
	case AdaptiveSampling:
		return "Adaptive"
	case ProportionalSampling:
		return "Proportional"
	default:
		return "InvalidSamplingMethod"
	}
}

// Default density: samples per unit of path length, and the clamps applied
// per sampling method.
const (
	samplesPerUnitLength = 0.5

	minArcLengthSamples = 2
	maxArcLengthSamples = 4096
	minLegacySamples    = 20
	maxLegacySamples    = 200
)

// fallbackSpan is the x extent of the synthetic reference line substituted
// for empty or zero-length paths.
const fallbackSpan = 100.0

// SamplePathString parses path data and samples it. See [SamplePath].
func SamplePathString(data string, method SamplingMethod, n int) []PathPoint {
	return SamplePath(ParsePath(data), method, n)
}

// SamplePath produces an ordered sample sequence along the whole path.
//
// n is the requested sample count; n <= 0 selects a density-based default of
// one sample per two units of path length, clamped to [2, 4096] for
// [ArcLengthSampling] and [20, 200] for the other methods.
//
// An empty segment list or a path of zero total length yields samples on a
// synthetic horizontal line from x=0 to x=100, so callers never receive an
// empty sequence.
func SamplePath(segs []PathSegment, method SamplingMethod, n int) []PathPoint {
	total := TotalLength(segs)
	if len(segs) == 0 || total == 0 {
		if n <= 0 {
			n = 2
		}
		return fallbackLine(n)
	}
	if n <= 0 {
		n = defaultSampleCount(total, method)
	}
	switch method {
	case ArcLengthSampling, AdaptiveSampling:
		return sampleArcLength(segs, total, n)
	case UniformSampling:
		return sampleUniform(segs, n)
	case ProportionalSampling:
		return sampleProportional(segs, total, n)
	default:
		return sampleArcLength(segs, total, n)
	}
}

func defaultSampleCount(total float64, method SamplingMethod) int {
	n := int(math.Round(total * samplesPerUnitLength))
	if method == ArcLengthSampling {
		return min(max(n, minArcLengthSamples), maxArcLengthSamples)
	}
	return min(max(n, minLegacySamples), maxLegacySamples)
}

// sampleArcLength distributes n samples uniformly in total arc length.
//
// For each target distance, the containing segment is located in a
// cumulative-length table (first match wins on boundary ties) and the
// leftover distance within the segment is divided by the segment's own
// length to obtain an approximate local parameter. This is a linear
// approximation of arc-length parametrization for curves, not an exact
// inverse.
func sampleArcLength(segs []PathSegment, total float64, n int) []PathPoint {
	// Prefix sums: cum[i] is the distance at the start of segs[i].
	cum := make([]float64, len(segs)+1)
	for i, seg := range segs {
		cum[i+1] = cum[i] + seg.Length
	}

	points := make([]PathPoint, n)
	for i := 0; i < n; i++ {
		var s float64
		if n > 1 {
			s = total * float64(i) / float64(n-1)
		}
		// First segment whose interval contains s.
		j := 0
		for j < len(segs)-1 && s > cum[j+1] {
			j++
		}
		seg := segs[j]
		var t float64
		if seg.Length > 0 {
			t = (s - cum[j]) / seg.Length
		}
		t = min(max(t, 0), 1)
		points[i] = seg.PointAt(t, s)
	}
	return points
}

// sampleProportional allocates per-segment counts proportional to each
// segment's share of the total length, with a minimum of two per segment,
// then samples each segment uniformly in its own parameter. The duplicated
// first point of every segment after the first is dropped.
func sampleProportional(segs []PathSegment, total float64, n int) []PathPoint {
	var points []PathPoint
	var travelled float64
	for si, seg := range segs {
		cnt := max(int(math.Round(float64(n)*seg.Length/total)), 2)
		for i := 0; i < cnt; i++ {
			if si > 0 && i == 0 {
				continue
			}
			t := float64(i) / float64(cnt-1)
			points = append(points, seg.PointAt(t, travelled+seg.Length*t))
		}
		travelled += seg.Length
	}
	return points
}

// sampleUniform samples every segment with the same per-segment count,
// uniform in the segment's own parameter, dropping duplicated joints.
func sampleUniform(segs []PathSegment, n int) []PathPoint {
	per := max(n/len(segs), 2)
	var points []PathPoint
	var travelled float64
	for si, seg := range segs {
		for i := 0; i < per; i++ {
			if si > 0 && i == 0 {
				continue
			}
			t := float64(i) / float64(per-1)
			points = append(points, seg.PointAt(t, travelled+seg.Length*t))
		}
		travelled += seg.Length
	}
	return points
}

// fallbackLine returns n samples on the horizontal reference line y=0,
// x ∈ [0, 100], with tangent 0 and distance equal to x.
func fallbackLine(n int) []PathPoint {
	points := make([]PathPoint, n)
	for i := 0; i < n; i++ {
		var x float64
		if n > 1 {
			x = fallbackSpan * float64(i) / float64(n-1)
		}
		points[i] = PathPoint{X: x, Dist: x}
	}
	return points
}
