package textwarp

import (
	"testing"
)

func TestSampleLineExact(t *testing.T) {
	got := SamplePathString("M 0 0 L 100 0", ArcLengthSampling, 3)
	want := []PathPoint{
		{X: 0, Y: 0, Tangent: 0, Dist: 0},
		{X: 50, Y: 0, Tangent: 0, Dist: 50},
		{X: 100, Y: 0, Tangent: 0, Dist: 100},
	}
	diff(t, want, got)
}

func TestSampleExactCount(t *testing.T) {
	segs := ParsePath("M 0 0 Q 50 100 100 0 L 150 0 C 160 10 170 10 180 0")
	for _, n := range []int{2, 3, 7, 21, 100} {
		if got := SamplePath(segs, ArcLengthSampling, n); len(got) != n {
			t.Errorf("requested %d samples, got %d", n, len(got))
		}
	}
}

func TestSampleDeterminism(t *testing.T) {
	const data = "M 0 0 Q 50 100 100 0 L 150 30"
	diff(t,
		SamplePathString(data, ArcLengthSampling, 33),
		SamplePathString(data, ArcLengthSampling, 33))
	diff(t,
		SamplePathString(data, ProportionalSampling, 33),
		SamplePathString(data, ProportionalSampling, 33))
}

func TestSampleMonotonicDistance(t *testing.T) {
	segs := ParsePath("M 0 0 Q 50 100 100 0 L 100 50 C 90 60 80 60 70 50")
	for _, method := range []SamplingMethod{ArcLengthSampling, UniformSampling, AdaptiveSampling, ProportionalSampling} {
		points := SamplePath(segs, method, 25)
		for i := 1; i < len(points); i++ {
			if points[i].Dist < points[i-1].Dist {
				t.Errorf("%s: distance decreases at sample %d: %g < %g",
					method, i, points[i].Dist, points[i-1].Dist)
			}
		}
	}
}

func TestSampleSegmentBoundary(t *testing.T) {
	// The shared distance at a joint resolves to the earlier segment, so the
	// tangent at the joint is the first segment's end tangent.
	got := SamplePathString("M 0 0 L 50 0 L 50 50", ArcLengthSampling, 5)
	diff(t, PathPoint{X: 50, Y: 0, Tangent: 0, Dist: 50}, got[2])
}

func TestSampleFallbackLine(t *testing.T) {
	want := []PathPoint{
		{X: 0, Dist: 0},
		{X: 25, Dist: 25},
		{X: 50, Dist: 50},
		{X: 75, Dist: 75},
		{X: 100, Dist: 100},
	}
	diff(t, want, SamplePathString("", ArcLengthSampling, 5))
	// A zero-length path degrades the same way.
	diff(t, want, SamplePathString("M 5 5 Z", ArcLengthSampling, 5))

	if got := SamplePathString("", ArcLengthSampling, 0); len(got) != 2 {
		t.Errorf("got %d fallback samples, expected 2", len(got))
	}
}

func TestSampleDefaultDensity(t *testing.T) {
	// One sample per two units of length, clamped per method.
	if got := SamplePathString("M 0 0 L 10 0", ArcLengthSampling, 0); len(got) != 5 {
		t.Errorf("got %d samples, expected 5", len(got))
	}
	if got := SamplePathString("M 0 0 L 1 0", ArcLengthSampling, 0); len(got) != minArcLengthSamples {
		t.Errorf("got %d samples, expected the lower clamp %d", len(got), minArcLengthSamples)
	}
	if got := SamplePathString("M 0 0 L 10 0", ProportionalSampling, 0); len(got) != minLegacySamples {
		t.Errorf("got %d samples, expected the legacy lower clamp %d", len(got), minLegacySamples)
	}
}

func TestSampleProportional(t *testing.T) {
	// Segment lengths 100 and 50: counts 6 and 3, minus one duplicated joint.
	got := SamplePathString("M 0 0 L 100 0 L 100 50", ProportionalSampling, 9)
	if len(got) != 8 {
		t.Fatalf("got %d samples, expected 8", len(got))
	}
	diff(t, PathPoint{X: 0, Y: 0, Tangent: 0, Dist: 0}, got[0])
	last := got[len(got)-1]
	diff(t, 100.0, last.X)
	diff(t, 50.0, last.Y)
	diff(t, 150.0, last.Dist)
}

func TestSampleUniform(t *testing.T) {
	// Two segments, three samples each, minus one duplicated joint.
	got := SamplePathString("M 0 0 L 100 0 L 100 50", UniformSampling, 6)
	if len(got) != 5 {
		t.Fatalf("got %d samples, expected 5", len(got))
	}
	diff(t, PathPoint{X: 25, Y: 0, Tangent: 0, Dist: 25}, got[1])
	diff(t, PathPoint{X: 50, Y: 0, Tangent: 0, Dist: 50}, got[2])
}
