// Package density implements the color density estimator: it turns a
// calibrated set of (r,g,b) samples per pixel per color into per-sticker
// color log-likelihoods for an observed image.
//
// Each pixel assigned to a sticker keeps its own per-color k-d tree of
// calibration samples — not one tree per sticker — because the same pixel
// position is recalibrated across many photos under different lighting,
// and a Loftsgaarden–Quesenberry k-NN density estimate is computed
// per-pixel before the per-sticker aggregation step folds pixels together
// via a percentile.
//
// The k-d tree itself (kdtree.go) is grounded on wbrown-img2ansi's
// from-scratch Go k-d tree, generalized from 3 discrete uint8 RGB axes to 3
// continuous float64 axes in [0,1]³ and from a build-once static tree to an
// incrementally-inserted one (calibration is additive across calls).
package density

import "math"

// These mirror the constants named in the qvis inference core this package
// is grounded on: MAX_NEAREST_N=10, MAX_FRACTION=8, CONFIDENCE_PERCENTILE=0.2.
const (
	confidencePercentile = 0.2
	maxNearestN          = 10
	maxFraction          = 8
)

var unitSphereVolumeCoefficient = 4.0 / 3.0 * math.Pi
