package textwarp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturesEmpty(t *testing.T) {
	diff(t, PathFeatures{}, ExtractFeatures(nil, ""))
}

func TestFeaturesClosure(t *testing.T) {
	// A Z in the path text closes the path regardless of geometry.
	points := SamplePathString("M 0 0 L 10 0 L 5 8 Z", ArcLengthSampling, 12)
	assert.True(t, ExtractFeatures(points, "M 0 0 L 10 0 L 5 8 Z").Closed)

	// Coincident endpoints close the path even without a Z.
	points = SamplePathString("M 10 0 L 20 10 L 10 20 L 0 10 L 10 0", ArcLengthSampling, 16)
	assert.True(t, ExtractFeatures(points, "").Closed)

	points = SamplePathString("M 0 0 L 100 0", ArcLengthSampling, 8)
	assert.False(t, ExtractFeatures(points, "M 0 0 L 100 0").Closed)
}

func TestFeaturesCorners(t *testing.T) {
	points := []PathPoint{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 20, Y: 20},
		{X: 30, Y: 20},
		{X: 40, Y: 20},
		{X: 50, Y: 10},
		{X: 60, Y: 0},
	}
	feat := ExtractFeatures(points, "")
	assert.Equal(t, 2, feat.CornerCount)
}

func TestFeaturesExtremaAndCrossings(t *testing.T) {
	points := []PathPoint{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 20, Y: 0},
		{X: 30, Y: -10},
		{X: 40, Y: 0},
	}
	feat := ExtractFeatures(points, "")
	assert.Equal(t, 1, feat.PeakCount)
	assert.Equal(t, 1, feat.TroughCount)
	assert.Equal(t, 1, feat.ZeroCrossings)
	assert.InDelta(t, 0, feat.MeanY, 1e-9)
	assert.GreaterOrEqual(t, feat.CurvatureSignChanges, 1)
}

func TestFeaturesBaseline(t *testing.T) {
	points := SamplePathString("M 0 0 L 100 30", ArcLengthSampling, 11)
	feat := ExtractFeatures(points, "")
	assert.InDelta(t, 0.3, feat.BaselineSlope, 1e-9)
	assert.InDelta(t, 0, feat.BaselineIntercept, 1e-9)
	assert.InDelta(t, 0, feat.Amplitude, 1e-9)
}

func TestFeaturesHistogram(t *testing.T) {
	points := fallbackLine(8)
	feat := ExtractFeatures(points, "M 0 0 A 1 1 0 0 1 5 5 L 10 10 l 5 0")
	assert.Equal(t, 1, feat.ArcCommands)
	assert.Equal(t, 2, feat.LineCommands)

	feat = ExtractFeatures(points, "")
	assert.Zero(t, feat.ArcCommands)
	assert.Zero(t, feat.LineCommands)
}

func TestFeaturesOrientation(t *testing.T) {
	square := []PathPoint{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}
	assert.Equal(t, OrientationClockwise, ExtractFeatures(square, "").Orientation)

	reversed := []PathPoint{square[3], square[2], square[1], square[0]}
	assert.Equal(t, OrientationCounterClockwise, ExtractFeatures(reversed, "").Orientation)

	colinear := []PathPoint{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 10, Y: 0},
	}
	assert.Equal(t, OrientationUnknown, ExtractFeatures(colinear, "").Orientation)
}

func TestSlopeSignChangesVertical(t *testing.T) {
	points := []PathPoint{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 0, Y: 5},
	}
	assert.Equal(t, 1, slopeSignChanges(points))
}

func TestMonotoneYDirection(t *testing.T) {
	up := []PathPoint{{Y: 0}, {Y: 1}, {Y: 2}, {Y: 3}}
	dir, ok := monotoneYDirection(up)
	assert.True(t, ok)
	assert.Equal(t, 1, dir)

	zigzag := []PathPoint{{Y: 0}, {Y: 1}, {Y: 0}, {Y: 1}}
	_, ok = monotoneYDirection(zigzag)
	assert.False(t, ok)

	_, ok = monotoneYDirection([]PathPoint{{Y: 5}, {Y: 5}})
	assert.False(t, ok)
}
