package textwarp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ringPath = "M 100 50 A 50 50 0 0 1 50 100 A 50 50 0 0 1 0 50 A 50 50 0 0 1 50 0 A 50 50 0 0 1 100 50 Z"

func classifyString(t *testing.T, data string, n int, opts ClassifyOptions) (Classification, bool) {
	t.Helper()
	return Classify(SamplePathString(data, ArcLengthSampling, n), data, opts)
}

func TestClassifyFlatLine(t *testing.T) {
	got, ok := classifyString(t, "M 0 0 L 120 0", 24, ClassifyOptions{})
	require.True(t, ok)
	assert.Equal(t, PresetPlain, got.Preset)
	assert.GreaterOrEqual(t, got.Confidence, 0.85)
}

func TestClassifyQuadArch(t *testing.T) {
	const data = "M 0 0 Q 50 100 100 0"
	points := SamplePathString(data, ArcLengthSampling, 21)
	// The apex sample must sit above the endpoints.
	assert.Greater(t, points[10].Y, 0.0)

	got, ok := Classify(points, data, ClassifyOptions{})
	require.True(t, ok)
	assert.Equal(t, PresetArchUp, got.Preset)
	assert.Greater(t, got.Confidence, 0.5)
}

func TestClassifyRing(t *testing.T) {
	points := SamplePathString(ringPath, ArcLengthSampling, 32)

	// Default side puts the text inside the ring, which pours.
	got, ok := Classify(points, ringPath, ClassifyOptions{})
	require.True(t, ok)
	assert.Equal(t, PresetCirclePour, got.Preset)

	// The opposite side reads along the outside.
	got, ok = Classify(points, ringPath, ClassifyOptions{Side: TextSideRight})
	require.True(t, ok)
	assert.Equal(t, PresetCircle, got.Preset)

	// A chorded circle still fits the circle family well.
	arch := fitArch(points)
	require.NotNil(t, arch.Params)
	assert.Greater(t, arch.Params["circleConfidence"], 0.7)
}

func TestClassifyWaveCycles(t *testing.T) {
	const data = "M 0 0 Q 12.5 40 25 0 Q 37.5 -40 50 0 Q 62.5 40 75 0 Q 87.5 -40 100 0"
	got, ok := classifyString(t, data, 41, ClassifyOptions{MinConfidence: 0.3})
	require.True(t, ok)
	assert.Equal(t, PresetWave2, got.Preset)
}

func TestClassifyShallowBulge(t *testing.T) {
	got, ok := classifyString(t, "M 0 0 Q 50 8 100 0", 21, ClassifyOptions{})
	require.True(t, ok)
	assert.Equal(t, PresetInflateTop, got.Preset)
	assert.InDelta(t, 0.85, got.Confidence, 0.01)
}

func TestClassifySlant(t *testing.T) {
	got, ok := classifyString(t, "M 0 0 L 100 30", 21, ClassifyOptions{})
	require.True(t, ok)
	assert.Equal(t, PresetSlantUp, got.Preset)
}

func TestClassifyConfidenceCap(t *testing.T) {
	// A smooth closed circle scores a near-perfect ring; the report caps out.
	const data = "M 100 50 C 100 77.6 77.6 100 50 100 C 22.4 100 0 77.6 0 50 C 0 22.4 22.4 0 50 0 C 77.6 0 100 22.4 100 50 Z"
	got, ok := classifyString(t, data, 32, ClassifyOptions{})
	require.True(t, ok)
	assert.Equal(t, PresetCirclePour, got.Preset)
	assert.InDelta(t, maxClassifyConfidence, got.Confidence, 1e-9)
}

func TestClassifyTooFewSamples(t *testing.T) {
	_, ok := Classify(fallbackLine(3), "", ClassifyOptions{})
	assert.False(t, ok)
}

func TestClassifyFloor(t *testing.T) {
	got, ok := classifyString(t, "M 0 0 L 120 0", 24, ClassifyOptions{MinConfidence: 0.99})
	assert.False(t, ok)
	assert.Empty(t, got.Preset)
	assert.Contains(t, got.Reason, "below floor")
}

func TestClassifyIdempotent(t *testing.T) {
	const data = "M 0 0 Q 50 100 100 0"
	points := SamplePathString(data, ArcLengthSampling, 21)
	first, ok1 := Classify(points, data, ClassifyOptions{})
	second, ok2 := Classify(points, data, ClassifyOptions{})
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestClassifySummary(t *testing.T) {
	got, ok := classifyString(t, "M 0 0 L 120 0", 24, ClassifyOptions{})
	require.True(t, ok)
	assert.Contains(t, got.Summary(), PresetPlain)
}

func TestPolygonCandidates(t *testing.T) {
	cases := []struct {
		name string
		feat PathFeatures
		want string
	}{
		{"chevron", PathFeatures{CornerCount: 2, MeanY: 5}, PresetChevron},
		{"chevron inverted", PathFeatures{CornerCount: 2, MeanY: -5}, PresetChevronInverted},
		{"triangle", PathFeatures{CornerCount: 3, MeanY: 5}, PresetTriangle},
		{"triangle inverted", PathFeatures{CornerCount: 3, MeanY: -5}, PresetTriangleInverted},
		{"stop", PathFeatures{Closed: true, CornerCount: 8}, PresetStop},
		{"cascade up", PathFeatures{LineCommands: 4, BaselineSlope: 0.5}, PresetCascadeUp},
		{"cascade down", PathFeatures{LineCommands: 4, BaselineSlope: -0.5}, PresetCascadeDown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cl := classifier{feat: c.feat}
			cands := cl.polygonCandidates()
			require.NotEmpty(t, cands)
			assert.Equal(t, c.want, cands[0].Preset)
		})
	}

	cl := classifier{feat: PathFeatures{CornerCount: 1}}
	assert.Empty(t, cl.polygonCandidates())
}

func TestButtonCanCandidates(t *testing.T) {
	cl := classifier{feat: PathFeatures{ArcCommands: 2, Closed: true}}
	cands := cl.buttonCanCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetButton, cands[0].Preset)

	cl.opts.Layout = LayoutStretch
	cands = cl.buttonCanCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetButtonPour, cands[0].Preset)

	tall := classifier{
		feat: PathFeatures{ArcCommands: 1, XRange: 50, YRange: 100},
		arch: WarpFitResult{Params: map[string]float64{"direction": 1}},
	}
	cands = tall.buttonCanCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetCanUp, cands[0].Preset)

	tall.arch.Params["direction"] = -1
	cands = tall.buttonCanCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetCanDown, cands[0].Preset)

	cl = classifier{feat: PathFeatures{ArcCommands: 0, Closed: true}}
	assert.Empty(t, cl.buttonCanCandidates())
}

func TestFadeCandidates(t *testing.T) {
	vertical := classifier{
		feat:   PathFeatures{XRange: 10, YRange: 100},
		points: []PathPoint{{Y: 0}, {Y: 30}, {Y: 60}, {Y: 100}},
	}
	cands := vertical.fadeCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetFadeUp, cands[0].Preset)

	horizontal := classifier{feat: PathFeatures{XRange: 100, YRange: 10, BaselineSlope: 0.2}}
	cands = horizontal.fadeCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetFadeLeft, cands[0].Preset)

	horizontal.feat.BaselineSlope = -0.2
	cands = horizontal.fadeCandidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, PresetFadeRight, cands[0].Preset)
}
