// Package textwarp converts vector path geometry into PowerPoint-compatible
// "WordArt" warp descriptions.
//
// The pipeline has four stages, each usable on its own:
//
//   - [ParsePath] tokenizes SVG-style path data (the M/L/C/Q/A/Z subset) into
//     typed [PathSegment] values with precomputed arc-length estimates.
//   - [SamplePath] produces an ordered sequence of [PathPoint] values along
//     the whole path. The primary contract is deterministic arc-length
//     sampling: exactly N points, uniformly spaced in total arc length, with
//     non-decreasing distance stamps. A legacy proportional mode samples each
//     segment in its own parameter instead.
//   - [FitWarp] fits a sampled path against three parametric families (arch,
//     wave, bulge) and scores a confidence for each.
//   - [Classify] combines the fits with extracted path features
//     ([ExtractFeatures]) and returns the best matching warp preset
//     identifier, e.g. [PresetArchUp] or [PresetWave2].
//
// Sampling and classification never fail: malformed or empty path data
// degrades to a synthetic horizontal reference line, and the absence of a
// usable classification is reported as an explicit "no match" rather than an
// error. All functions are pure and safe for concurrent use on disjoint
// inputs.
//
// # Coordinate and angle conventions
//
// Coordinates follow the SVG convention. Tangent angles are expressed in
// radians as atan2(Δy, Δx). "Up" and "down" in preset names refer to the sign
// of the vertical deviation relative to the baseline fitted through the
// samples.
//
// # Non-goals
//
// Elliptical arcs are approximated by straight chords at parse time; this is
// a deliberate fidelity trade-off, as the downstream warp presets carry no
// arc-level detail. Arc-length re-parametrization of Bézier segments uses a
// piecewise-linear inversion rather than exact root-finding. Glyph shaping,
// scene-graph modelling and DrawingML emission live in other packages.
package textwarp
