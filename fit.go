package textwarp

import (
	"fmt"
	"math"
)

// WarpFamily identifies the parametric family a sampled path was fitted
// against.
type WarpFamily int

const (
	// No family matched with sufficient confidence.
	FamilyNone WarpFamily = iota
	// A circular or elliptical arch.
	FamilyArch
	// A sinusoidal wave around a linear baseline.
	FamilyWave
	// A single quadratic bulge.
	FamilyBulge
)

func (f WarpFamily) String() string {
	switch f {
	case FamilyNone:
		return "None"
	case FamilyArch:
		return "Arch"
	case FamilyWave:
		return "Wave"
	case FamilyBulge:
		return "Bulge"
	default:
		return "InvalidWarpFamily"
	}
}

// FitQuality is a coarse label derived from a fit's confidence.
type FitQuality int

const (
	QualityPoor FitQuality = iota
	QualityFair
	QualityGood
	QualityExcellent
)

func (q FitQuality) String() string {
	switch q {
	case QualityPoor:
		return "Poor"
	case QualityFair:
		return "Fair"
	case QualityGood:
		return "Good"
	case QualityExcellent:
		return "Excellent"
	default:
		return "InvalidFitQuality"
	}
}

// qualityFor maps a confidence to its label.
func qualityFor(confidence float64) FitQuality {
	switch {
	case confidence >= 0.95:
		return QualityExcellent
	case confidence >= 0.80:
		return QualityGood
	case confidence >= 0.60:
		return QualityFair
	default:
		return QualityPoor
	}
}

// WarpFitResult reports how well a sampled path matches one parametric
// family.
//
// Confidence is clamped to [0, 1]; it is a goodness-of-fit score, not a
// calibrated probability. RMS is the root-mean-square reconstruction error
// and may be +Inf for fits that never ran. Params carries family-specific
// parameters (circle center and radius, wave amplitude and frequency,
// quadratic coefficients). Reason is a diagnostic string; it replaces any
// form of logging.
type WarpFitResult struct {
	Family     WarpFamily
	Confidence float64
	RMS        float64
	Params     map[string]float64
	Quality    FitQuality
	Reason     string
}

// DefaultFitConfidenceFloor is the confidence below which [FitWarp] reports
// no fit.
const DefaultFitConfidenceFloor = 0.60

const (
	minFitSamples  = 10
	minArchSamples = 3
	minWaveSamples = 5
)

// FitWarp fits a sampled path against the arch, wave and bulge families and
// returns the best of the three.
//
// minConfidence is the floor below which the result degrades to
// [FamilyNone]; values <= 0 select [DefaultFitConfidenceFloor]. Fewer than
// ten samples yield an immediate zero-confidence [FamilyNone] result. FitWarp
// never fails: a family whose arithmetic degenerates simply scores zero.
func FitWarp(points []PathPoint, minConfidence float64) WarpFitResult {
	if minConfidence <= 0 {
		minConfidence = DefaultFitConfidenceFloor
	}
	if len(points) < minFitSamples {
		return noFit(fmt.Sprintf("insufficient samples for warp fitting: %d < %d", len(points), minFitSamples))
	}
	best := fitArch(points)
	if wave := fitWave(points); wave.Confidence > best.Confidence {
		best = wave
	}
	if bulge := fitBulge(points); bulge.Confidence > best.Confidence {
		best = bulge
	}
	if best.Confidence < minConfidence {
		return noFit(fmt.Sprintf("best family %s at %.2f below floor %.2f", best.Family, best.Confidence, minConfidence))
	}
	best.Quality = qualityFor(best.Confidence)
	return best
}

func noFit(reason string) WarpFitResult {
	return WarpFitResult{
		Family:  FamilyNone,
		RMS:     math.Inf(1),
		Quality: QualityPoor,
		Reason:  reason,
	}
}

func familyFailed(family WarpFamily, reason string) WarpFitResult {
	return WarpFitResult{
		Family:  family,
		RMS:     math.Inf(1),
		Quality: QualityPoor,
		Reason:  reason,
	}
}

// fitArch fits a least-squares circle (centroid and mean radius) and a crude
// ellipse variant, keeping the better of the two. The direction parameter is
// +1 ("up") when the midpoint sample rises above the average of the two
// endpoint samples.
func fitArch(points []PathPoint) WarpFitResult {
	if len(points) < minArchSamples {
		return familyFailed(FamilyArch, fmt.Sprintf("arch fit needs at least %d samples", minArchSamples))
	}
	var cx, cy float64
	for _, pt := range points {
		cx += pt.X
		cy += pt.Y
	}
	n := float64(len(points))
	cx /= n
	cy /= n
	center := Pt(cx, cy)

	var radius float64
	for _, pt := range points {
		radius += pt.Point().Distance(center)
	}
	radius /= n
	if radius == 0 || math.IsNaN(radius) {
		return familyFailed(FamilyArch, "degenerate arch geometry: all samples coincide")
	}

	var variance float64
	for _, pt := range points {
		d := pt.Point().Distance(center) - radius
		variance += d * d
	}
	variance /= n
	circleConf := clamp01(1 - variance/(radius*radius))

	// Crude ellipse variant: same centroid fit, confidence boosted. The
	// boost reflects that an ellipse has more freedom than a circle, without
	// paying for a real conic solve.
	ellipseConf := min(circleConf*1.1, 1.0)

	bounds := boundsOf(points)
	mid := points[len(points)/2]
	endsAvg := 0.5 * (points[0].Y + points[len(points)-1].Y)
	direction := -1.0
	if mid.Y > endsAvg {
		direction = 1.0
	}

	conf := circleConf
	ellipse := 0.0
	if ellipseConf > conf {
		conf = ellipseConf
		ellipse = 1.0
	}
	if math.IsNaN(conf) {
		return familyFailed(FamilyArch, "arch fit produced NaN confidence")
	}
	return WarpFitResult{
		Family:     FamilyArch,
		Confidence: conf,
		RMS:        math.Sqrt(variance),
		Quality:    qualityFor(conf),
		Reason:     fmt.Sprintf("circle fit %.2f, ellipse variant %.2f", circleConf, ellipseConf),
		Params: map[string]float64{
			"centerX":          cx,
			"centerY":          cy,
			"radius":           radius,
			"circleConfidence": circleConf,
			"rx":               bounds.Width() / 2,
			"ry":               bounds.Height() / 2,
			"ellipse":          ellipse,
			"direction":        direction,
		},
	}
}

// fitWave fits a linear baseline by least squares, detrends, and models the
// residual as a fixed-phase sine whose frequency comes from the
// zero-crossing count over the x extent.
func fitWave(points []PathPoint) WarpFitResult {
	if len(points) < minWaveSamples {
		return familyFailed(FamilyWave, fmt.Sprintf("wave fit needs at least %d samples", minWaveSamples))
	}
	slope, intercept, ok := linearBaseline(points)
	if !ok {
		return familyFailed(FamilyWave, "degenerate wave geometry: no x extent")
	}
	bounds := boundsOf(points)
	xExtent := bounds.Width()
	if xExtent == 0 {
		return familyFailed(FamilyWave, "degenerate wave geometry: no x extent")
	}

	detrended := make([]float64, len(points))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, pt := range points {
		d := pt.Y - (slope*pt.X + intercept)
		detrended[i] = d
		lo = min(lo, d)
		hi = max(hi, d)
	}
	amplitude := (hi - lo) / 2
	if amplitude < 1e-9 {
		return familyFailed(FamilyWave, "no measurable oscillation around the baseline")
	}

	crossings := signChanges(detrended)
	var frequency float64
	if crossings >= 2 {
		frequency = float64(crossings) / 2 / xExtent
	} else {
		frequency = 1 / xExtent
	}

	var sq float64
	for i, pt := range points {
		predicted := amplitude * math.Sin(2*math.Pi*frequency*(pt.X-bounds.X0))
		r := detrended[i] - predicted
		sq += r * r
	}
	rms := math.Sqrt(sq / float64(len(points)))
	conf := math.Max(0, 1-rms/math.Max(bounds.Height(), 1))
	if math.IsNaN(conf) {
		return familyFailed(FamilyWave, "wave fit produced NaN confidence")
	}
	return WarpFitResult{
		Family:     FamilyWave,
		Confidence: clamp01(conf),
		RMS:        rms,
		Quality:    qualityFor(conf),
		Reason:     fmt.Sprintf("%d zero crossings over x extent %.1f", crossings, xExtent),
		Params: map[string]float64{
			"amplitude": amplitude,
			"frequency": frequency,
			"phase":     0,
			"slope":     slope,
			"intercept": intercept,
		},
	}
}

// fitBulge fits a quadratic through the first, middle and last samples.
//
// This is a deliberate three-term estimator rather than a least-squares
// normal-equation solve; downstream preset thresholds were tuned against its
// confidence formula. The direction parameter is +1 ("up") when the
// quadratic opens downward.
func fitBulge(points []PathPoint) WarpFitResult {
	if len(points) < minArchSamples {
		return familyFailed(FamilyBulge, fmt.Sprintf("bulge fit needs at least %d samples", minArchSamples))
	}
	p0 := points[0]
	pm := points[len(points)/2]
	p1 := points[len(points)-1]
	d0 := (p0.X - pm.X) * (p0.X - p1.X)
	dm := (pm.X - p0.X) * (pm.X - p1.X)
	d1 := (p1.X - p0.X) * (p1.X - pm.X)
	if d0 == 0 || dm == 0 || d1 == 0 {
		return familyFailed(FamilyBulge, "degenerate bulge geometry: coincident anchor abscissae")
	}
	// Lagrange basis through the three anchors, collected into a x² + b x + c.
	l0 := p0.Y / d0
	lm := pm.Y / dm
	l1 := p1.Y / d1
	a := l0 + lm + l1
	b := -(l0*(pm.X+p1.X) + lm*(p0.X+p1.X) + l1*(p0.X+pm.X))
	c := l0*pm.X*p1.X + lm*p0.X*p1.X + l1*p0.X*pm.X

	var sq float64
	for _, pt := range points {
		r := pt.Y - (a*pt.X*pt.X + b*pt.X + c)
		sq += r * r
	}
	rms := math.Sqrt(sq / float64(len(points)))
	bounds := boundsOf(points)
	conf := math.Max(0, 1-rms/math.Max(bounds.Height(), 1))
	if math.IsNaN(conf) {
		return familyFailed(FamilyBulge, "bulge fit produced NaN confidence")
	}
	direction := -1.0
	if a < 0 {
		direction = 1.0
	}
	return WarpFitResult{
		Family:     FamilyBulge,
		Confidence: clamp01(conf),
		RMS:        rms,
		Quality:    qualityFor(conf),
		Reason:     fmt.Sprintf("three-point quadratic, a=%.4g", a),
		Params: map[string]float64{
			"a":         a,
			"b":         b,
			"c":         c,
			"direction": direction,
		},
	}
}

// linearBaseline fits y = slope*x + intercept by least squares. It reports
// false when the samples have no x variance.
func linearBaseline(points []PathPoint) (slope, intercept float64, ok bool) {
	n := float64(len(points))
	if n == 0 {
		return 0, 0, false
	}
	var sx, sy, sxx, sxy float64
	for _, pt := range points {
		sx += pt.X
		sy += pt.Y
		sxx += pt.X * pt.X
		sxy += pt.X * pt.Y
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return 0, 0, false
	}
	slope = (n*sxy - sx*sy) / denom
	intercept = (sy - slope*sx) / n
	return slope, intercept, true
}

// signChanges counts sign changes in a series, skipping zero values.
func signChanges(values []float64) int {
	var count int
	var prev float64
	for _, v := range values {
		if v == 0 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			count++
		}
		prev = v
	}
	return count
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
