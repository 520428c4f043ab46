package textwarp

import (
	"testing"
)

func TestParsePathLine(t *testing.T) {
	got := ParsePath("M 0 0 L 100 0")
	want := []PathSegment{
		{Kind: LineKind, P0: Pt(0, 0), P1: Pt(100, 0), Length: 100},
	}
	diff(t, want, got)
}

func TestParsePathCurves(t *testing.T) {
	got := ParsePath("M 0 0 Q 50 100 100 0 C 110 10 120 10 130 0")
	want := []PathSegment{
		QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}.Seg(),
		CubicBez{Pt(100, 0), Pt(110, 10), Pt(120, 10), Pt(130, 0)}.Seg(),
	}
	diff(t, want, got)
}

func TestParsePathRelative(t *testing.T) {
	got := ParsePath("m 10 10 l 10 0 l 0 10")
	want := []PathSegment{
		Line{Pt(10, 10), Pt(20, 10)}.Seg(),
		Line{Pt(20, 10), Pt(20, 20)}.Seg(),
	}
	diff(t, want, got)

	got = ParsePath("m 10 10 q 5 5 10 0")
	want = []PathSegment{
		QuadBez{Pt(10, 10), Pt(15, 15), Pt(20, 10)}.Seg(),
	}
	diff(t, want, got)
}

func TestParsePathArcChord(t *testing.T) {
	// Arcs degrade to a straight chord to the declared end point.
	got := ParsePath("M 0 0 A 5 5 0 0 1 10 0")
	want := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
	}
	diff(t, want, got)

	got = ParsePath("M 0 0 a 5 5 0 0 1 10 0")
	diff(t, want, got)
}

func TestParsePathClose(t *testing.T) {
	got := ParsePath("M 0 0 L 10 0 L 10 10 Z")
	want := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 10)}.Seg(),
		Line{Pt(10, 10), Pt(0, 0)}.Seg(),
	}
	diff(t, want, got)

	// No closing line when the current point already coincides with the
	// subpath start.
	got = ParsePath("M 0 0 L 10 0 L 0 0 Z")
	want = []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(0, 0)}.Seg(),
	}
	diff(t, want, got)

	if got := ParsePath("M 5 5 Z"); len(got) != 0 {
		t.Errorf("got %d segments for a degenerate closed path, expected none", len(got))
	}
}

func TestParsePathImplicitRepetition(t *testing.T) {
	got := ParsePath("M 0 0 L 10 0 20 0")
	want := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(20, 0)}.Seg(),
	}
	diff(t, want, got)

	// Extra coordinate pairs after M are line-tos.
	got = ParsePath("M 0 0 10 10")
	want = []PathSegment{
		Line{Pt(0, 0), Pt(10, 10)}.Seg(),
	}
	diff(t, want, got)
}

func TestParsePathExponents(t *testing.T) {
	got := ParsePath("M 0 0 L 1e2 -2.5E-1")
	want := []PathSegment{
		Line{Pt(0, 0), Pt(100, -0.25)}.Seg(),
	}
	diff(t, want, got)
}

func TestParsePathMalformed(t *testing.T) {
	for _, data := range []string{"", "hello", "L", "M", "M 0", "12 34"} {
		if got := ParsePath(data); len(got) != 0 {
			t.Errorf("ParsePath(%q) returned %d segments, expected none", data, len(got))
		}
	}
	// A parseable prefix survives a malformed tail.
	got := ParsePath("M 0 0 L 10 0 L oops")
	want := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
	}
	diff(t, want, got)
}
