package textwarp

import (
	"fmt"
	"math"
	"slices"
)

// TextSide selects which side of the path the text sits on.
type TextSide int

const (
	TextSideLeft TextSide = iota
	TextSideRight
)

// LayoutMethod is the caller's layout hint. Stretch layouts prefer the
// "pour" preset variants, which distort glyphs to fill the shape.
type LayoutMethod int

const (
	LayoutAlign LayoutMethod = iota
	LayoutStretch
)

// ClassifyOptions carries the layout hints and the confidence floor for
// [Classify]. The zero value selects left-side text, align layout and
// [DefaultClassifyConfidenceFloor].
type ClassifyOptions struct {
	Side          TextSide
	Layout        LayoutMethod
	MinConfidence float64
}

// DefaultClassifyConfidenceFloor is the confidence below which [Classify]
// reports no match.
const DefaultClassifyConfidenceFloor = 0.55

// maxClassifyConfidence caps reported confidence; the classifier never
// asserts certainty.
const maxClassifyConfidence = 0.99

const minClassifySamples = 4

// Candidate is one preset proposal raised by a classifier family.
type Candidate struct {
	Preset     string
	Confidence float64
	Params     map[string]float64
	Reason     string
}

// Classification is the final result of classifying a sampled path: the
// winning preset identifier, its confidence (clamped to at most 0.99), the
// preset-specific parameters, a diagnostic reason, and the feature snapshot
// the decision was based on.
type Classification struct {
	Preset     string
	Confidence float64
	Params     map[string]float64
	Reason     string
	Features   PathFeatures
}

// Summary returns a one-line diagnostic description of the classification.
func (c Classification) Summary() string {
	return fmt.Sprintf("%s (%.2f): %s", c.Preset, c.Confidence, c.Reason)
}

// Classify maps a sampled path to the best matching warp preset.
//
// pathData is the raw path text the samples came from; it may be empty, in
// which case closure and command-histogram detection degrade to numeric
// heuristics. The second return value is false when no family produced a
// candidate at or above the confidence floor, or when fewer than four
// samples were supplied. Classify never returns an error and is
// deterministic for identical inputs.
func Classify(points []PathPoint, pathData string, opts ClassifyOptions) (Classification, bool) {
	floor := opts.MinConfidence
	if floor <= 0 {
		floor = DefaultClassifyConfidenceFloor
	}
	if len(points) < minClassifySamples {
		return Classification{Reason: fmt.Sprintf("insufficient samples for classification: %d < %d", len(points), minClassifySamples)}, false
	}

	cl := classifier{
		points: points,
		feat:   ExtractFeatures(points, pathData),
		opts:   opts,
		arch:   fitArch(points),
		wave:   fitWave(points),
		bulge:  fitBulge(points),
	}

	var cands []Candidate
	for _, family := range []func() []Candidate{
		cl.ringCandidates,
		cl.archCandidates,
		cl.waveCandidates,
		cl.bulgeCandidates,
		cl.slantCandidates,
		cl.polygonCandidates,
		cl.buttonCanCandidates,
		cl.fadeCandidates,
	} {
		cands = append(cands, family()...)
	}
	if len(cands) == 0 {
		return Classification{Features: cl.feat, Reason: "no family produced a candidate"}, false
	}
	best := slices.MaxFunc(cands, func(a, b Candidate) int {
		// Stable preference for the earlier family on exact ties.
		if a.Confidence > b.Confidence {
			return 1
		}
		if a.Confidence < b.Confidence {
			return -1
		}
		return 0
	})
	if best.Confidence < floor {
		return Classification{
			Features: cl.feat,
			Reason:   fmt.Sprintf("best candidate %s at %.2f below floor %.2f", best.Preset, best.Confidence, floor),
		}, false
	}
	return Classification{
		Preset:     best.Preset,
		Confidence: min(best.Confidence, maxClassifyConfidence),
		Params:     best.Params,
		Reason:     best.Reason,
		Features:   cl.feat,
	}, true
}

// classifier bundles the per-call inputs of a classification. It lives for
// one Classify invocation and is never shared.
type classifier struct {
	points []PathPoint
	feat   PathFeatures
	opts   ClassifyOptions
	arch   WarpFitResult
	wave   WarpFitResult
	bulge  WarpFitResult
}

// ringCandidates scores closed, round paths. Rings need enough samples to
// tell a circle from a polygon.
func (cl *classifier) ringCandidates() []Candidate {
	if !cl.feat.Closed || len(cl.points) < 16 {
		return nil
	}
	maxRange := max(cl.feat.XRange, cl.feat.YRange)
	if maxRange == 0 {
		return nil
	}
	aspect := min(cl.feat.XRange, cl.feat.YRange) / maxRange
	cornerDensity := float64(cl.feat.CornerCount) / float64(cl.feat.PointCount)
	conf := 0.55*aspect + 0.45*(1-min(1, 2*cornerDensity))

	// Text renders inside the ring when the winding direction faces the
	// requested side; inside text pours, as does stretch layout.
	inside := (cl.feat.Orientation == OrientationClockwise) != (cl.opts.Side == TextSideRight)
	preset := PresetCircle
	if inside || cl.opts.Layout == LayoutStretch {
		preset = PresetCirclePour
	}
	params := map[string]float64{
		"aspect":        aspect,
		"cornerDensity": cornerDensity,
	}
	if cl.arch.Params != nil {
		params["centerX"] = cl.arch.Params["centerX"]
		params["centerY"] = cl.arch.Params["centerY"]
		params["radius"] = cl.arch.Params["radius"]
	}
	return []Candidate{{
		Preset:     preset,
		Confidence: conf,
		Params:     params,
		Reason:     fmt.Sprintf("closed ring, aspect %.2f, corner density %.2f", aspect, cornerDensity),
	}}
}

// archCandidates scores single-bend paths. A path whose curvature reverses
// while showing both a peak and a trough is a wave, not an arch, and is
// skipped here.
func (cl *classifier) archCandidates() []Candidate {
	if cl.feat.CurvatureSignChanges >= 1 && cl.feat.PeakCount > 0 && cl.feat.TroughCount > 0 {
		return nil
	}
	if cl.feat.XRange == 0 {
		return nil
	}
	heightRatio := cl.feat.YRange / cl.feat.XRange
	if heightRatio < 0.05 {
		return nil
	}
	// The circle fit undervalues parabolic arches, so the height ratio
	// contributes a floor of its own.
	conf := min(0.95, max(cl.arch.Confidence, 0.55+0.45*min(1, heightRatio/0.5)))

	up := cl.arch.Params != nil && cl.arch.Params["direction"] > 0
	var preset string
	if heightRatio >= 0.35 {
		switch {
		case up && cl.opts.Layout == LayoutStretch:
			preset = PresetArchUpPour
		case up:
			preset = PresetArchUp
		case cl.opts.Layout == LayoutStretch:
			preset = PresetArchDownPour
		default:
			preset = PresetArchDown
		}
	} else {
		if up {
			preset = PresetCurveUp
		} else {
			preset = PresetCurveDown
		}
	}
	return []Candidate{{
		Preset:     preset,
		Confidence: conf,
		Params:     cl.arch.Params,
		Reason:     fmt.Sprintf("single bend, height ratio %.2f, arch fit %.2f", heightRatio, cl.arch.Confidence),
	}}
}

// waveCandidates scores oscillating paths by cycle count.
func (cl *classifier) waveCandidates() []Candidate {
	if cl.wave.Confidence == 0 {
		return nil
	}
	cycles := min(cl.feat.PeakCount, cl.feat.TroughCount)
	if cycles == 0 {
		cycles = cl.feat.ZeroCrossings / 2
	}
	var preset string
	switch {
	case cycles >= 3:
		preset = PresetWave4
	case cycles == 2:
		preset = PresetWave2
	default:
		preset = PresetWave1
	}
	cands := []Candidate{{
		Preset:     preset,
		Confidence: cl.wave.Confidence,
		Params:     cl.wave.Params,
		Reason:     fmt.Sprintf("%d wave cycles, wave fit %.2f", cycles, cl.wave.Confidence),
	}}
	// Busy paths with moderate vertical spread suggest the double-wave
	// outline, where top and bottom edges oscillate in phase.
	if cl.feat.ZeroCrossings >= 5 && cl.feat.YRange > 0 {
		spread := cl.feat.StdY / cl.feat.YRange
		if spread >= 0.15 && spread <= 0.4 {
			cands = append(cands, Candidate{
				Preset:     PresetDoubleWave1,
				Confidence: cl.wave.Confidence * 0.95,
				Params:     cl.wave.Params,
				Reason:     fmt.Sprintf("%d zero crossings with y spread %.2f", cl.feat.ZeroCrossings, spread),
			})
		}
	}
	return cands
}

// bulgeCandidates scores paths dominated by a single quadratic bulge. The
// bulge score is discounted against arch: a clean arch also interpolates
// well through three anchors, and arch should win that contest.
func (cl *classifier) bulgeCandidates() []Candidate {
	if cl.bulge.Params == nil {
		return nil
	}
	a := cl.bulge.Params["a"]
	halfSpan := cl.feat.XRange / 2
	depth := math.Abs(a) * halfSpan * halfSpan
	if depth < 0.05*max(cl.feat.YRange, 1) {
		return nil
	}
	conf := cl.bulge.Confidence * 0.85

	inflate := a < 0
	region := cl.extremumRegion()
	var preset string
	switch {
	case inflate && region > 0:
		preset = PresetInflateTop
	case inflate && region < 0:
		preset = PresetInflateBottom
	case inflate:
		preset = PresetInflate
	case region > 0:
		preset = PresetDeflateTop
	case region < 0:
		preset = PresetDeflateBottom
	default:
		preset = PresetDeflate
	}
	cands := []Candidate{{
		Preset:     preset,
		Confidence: conf,
		Params:     cl.bulge.Params,
		Reason:     fmt.Sprintf("quadratic a=%.4g, depth %.1f, bulge fit %.2f", a, depth, cl.bulge.Confidence),
	}}
	if cl.feat.CurvatureSignChanges >= 2 {
		cands = append(cands, Candidate{
			Preset:     PresetDeflateInflate,
			Confidence: conf * 0.9,
			Params:     cl.bulge.Params,
			Reason:     fmt.Sprintf("%d curvature reversals suggest a multi-phase bulge", cl.feat.CurvatureSignChanges),
		})
	}
	return cands
}

// extremumRegion locates the sample furthest from the baseline within the
// vertical extent of the path: +1 for the top third, -1 for the bottom
// third, 0 for the middle.
func (cl *classifier) extremumRegion() int {
	if cl.feat.YRange == 0 {
		return 0
	}
	bounds := boundsOf(cl.points)
	var extremum PathPoint
	var largest float64
	for _, pt := range cl.points {
		d := math.Abs(pt.Y - (cl.feat.BaselineSlope*pt.X + cl.feat.BaselineIntercept))
		if d > largest {
			largest = d
			extremum = pt
		}
	}
	rel := (extremum.Y - bounds.Y0) / cl.feat.YRange
	switch {
	case rel > 2.0/3.0:
		return 1
	case rel < 1.0/3.0:
		return -1
	default:
		return 0
	}
}

// slantCandidates scores open, arcless paths that are essentially straight:
// a measurable slope selects a slant preset, a negligible one the plain
// preset.
func (cl *classifier) slantCandidates() []Candidate {
	if cl.feat.Closed || cl.feat.ArcCommands > 0 {
		return nil
	}
	xr := max(cl.feat.XRange, 1)
	slope := cl.feat.BaselineSlope
	if cl.feat.YRange <= 0.02*xr && math.Abs(slope) <= 0.02 {
		conf := 0.95 * (1 - min(1, cl.feat.YRange/xr))
		return []Candidate{{
			Preset:     PresetPlain,
			Confidence: conf,
			Params:     map[string]float64{"slope": slope},
			Reason:     fmt.Sprintf("flat path, y range %.2f over x range %.2f", cl.feat.YRange, cl.feat.XRange),
		}}
	}
	if math.Abs(slope) > 0.05 && cl.feat.Amplitude <= 0.1*xr {
		preset := PresetSlantDown
		if slope > 0 {
			preset = PresetSlantUp
		}
		conf := 0.85 * (1 - min(1, 2*cl.feat.Amplitude/xr))
		return []Candidate{{
			Preset:     preset,
			Confidence: conf,
			Params:     map[string]float64{"slope": slope, "intercept": cl.feat.BaselineIntercept},
			Reason:     fmt.Sprintf("straight path with slope %.2f", slope),
		}}
	}
	return nil
}

// polygonCandidates scores paths dominated by straight edges and sharp
// corners.
func (cl *classifier) polygonCandidates() []Candidate {
	var cands []Candidate
	if !cl.feat.Closed && cl.feat.CornerCount >= 2 && cl.feat.CornerCount <= 3 {
		inverted := cl.feat.MeanY < 0
		var preset string
		if cl.feat.CornerCount == 2 {
			if inverted {
				preset = PresetChevronInverted
			} else {
				preset = PresetChevron
			}
		} else {
			if inverted {
				preset = PresetTriangleInverted
			} else {
				preset = PresetTriangle
			}
		}
		cands = append(cands, Candidate{
			Preset:     preset,
			Confidence: 0.65,
			Params:     map[string]float64{"corners": float64(cl.feat.CornerCount)},
			Reason:     fmt.Sprintf("open path with %d corners", cl.feat.CornerCount),
		})
	}
	if cl.feat.Closed && cl.feat.CornerCount >= 6 {
		cands = append(cands, Candidate{
			Preset:     PresetStop,
			Confidence: 0.7,
			Params:     map[string]float64{"corners": float64(cl.feat.CornerCount)},
			Reason:     fmt.Sprintf("closed path with %d corners", cl.feat.CornerCount),
		})
	}
	if !cl.feat.Closed && cl.feat.LineCommands >= 3 && cl.feat.ZeroCrossings <= 1 {
		preset := PresetCascadeDown
		if cl.feat.BaselineSlope >= 0 {
			preset = PresetCascadeUp
		}
		cands = append(cands, Candidate{
			Preset:     preset,
			Confidence: 0.6,
			Params:     map[string]float64{"lines": float64(cl.feat.LineCommands)},
			Reason:     fmt.Sprintf("%d line commands with %d zero crossings", cl.feat.LineCommands, cl.feat.ZeroCrossings),
		})
	}
	return cands
}

// buttonCanCandidates scores paths whose text carries arc commands: closed
// ones become buttons, tall open ones become cans.
func (cl *classifier) buttonCanCandidates() []Candidate {
	if cl.feat.ArcCommands == 0 {
		return nil
	}
	if cl.feat.Closed {
		preset := PresetButton
		if cl.opts.Layout == LayoutStretch {
			preset = PresetButtonPour
		}
		return []Candidate{{
			Preset:     preset,
			Confidence: 0.7,
			Params:     map[string]float64{"arcs": float64(cl.feat.ArcCommands)},
			Reason:     fmt.Sprintf("closed path with %d arc commands", cl.feat.ArcCommands),
		}}
	}
	if cl.feat.YRange > 1.2*cl.feat.XRange {
		preset := PresetCanDown
		if cl.arch.Params != nil && cl.arch.Params["direction"] > 0 {
			preset = PresetCanUp
		}
		return []Candidate{{
			Preset:     preset,
			Confidence: 0.65,
			Params:     map[string]float64{"arcs": float64(cl.feat.ArcCommands)},
			Reason:     fmt.Sprintf("tall open path with %d arc commands", cl.feat.ArcCommands),
		}}
	}
	return nil
}

// fadeCandidates scores monotonic, dominant-axis paths whose slope sign is
// consistent along the whole run.
func (cl *classifier) fadeCandidates() []Candidate {
	if cl.feat.Closed {
		return nil
	}
	if cl.feat.YRange > 2*cl.feat.XRange {
		dir, ok := monotoneYDirection(cl.points)
		if !ok {
			return nil
		}
		preset := PresetFadeDown
		if dir > 0 {
			preset = PresetFadeUp
		}
		return []Candidate{{
			Preset:     preset,
			Confidence: 0.6,
			Params:     map[string]float64{"direction": float64(dir)},
			Reason:     "vertical dominant monotonic baseline",
		}}
	}
	if cl.feat.XRange > 2*cl.feat.YRange && math.Abs(cl.feat.BaselineSlope) > 0.05 {
		preset := PresetFadeLeft
		if cl.feat.BaselineSlope < 0 {
			preset = PresetFadeRight
		}
		return []Candidate{{
			Preset:     preset,
			Confidence: 0.6,
			Params:     map[string]float64{"slope": cl.feat.BaselineSlope},
			Reason:     "horizontal dominant baseline with consistent slope",
		}}
	}
	return nil
}

// monotoneYDirection reports the consistent sign of dy along the samples, if
// at least 90% of the steps agree.
func monotoneYDirection(points []PathPoint) (int, bool) {
	var pos, neg, total int
	for i := 1; i < len(points); i++ {
		dy := points[i].Y - points[i-1].Y
		if dy == 0 {
			continue
		}
		total++
		if dy > 0 {
			pos++
		} else {
			neg++
		}
	}
	if total == 0 {
		return 0, false
	}
	if float64(pos)/float64(total) >= 0.9 {
		return 1, true
	}
	if float64(neg)/float64(total) >= 0.9 {
		return -1, true
	}
	return 0, false
}
