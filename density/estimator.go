package density

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/matchutil"
	"github.com/katalvlaran/cvmatch/permutation"
)

// pixel holds one sticker-assigned pixel's accumulated calibration samples,
// one k-d tree per color seen at that pixel across calls to Calibrate.
type pixel struct {
	index int
	trees map[colorid.Color]*kdTree
}

// Estimator is a per-pixel, per-color Loftsgaarden–Quesenberry k-NN density
// estimator. It groups the image's pixels by the sticker they were assigned
// to, and keeps an independent spatial index of calibration samples for
// every (pixel, color) pair it has seen.
type Estimator struct {
	pixelsBySticker [][]pixel
	imageSize       int
	rng             *rand.Rand
}

// NewEstimator builds an estimator over an image of imageSize pixels,
// assigning each pixel to a sticker (or to white-balance/no role) per
// assignment. faceletCount is the number of stickers the estimator should
// be prepared to report densities for.
func NewEstimator(assignment []geometry.PixelRole, imageSize, faceletCount int, opts ...Option) (*Estimator, error) {
	if err := geometry.ValidateAssignment(assignment, imageSize, faceletCount); err != nil {
		return nil, err
	}

	pixelsBySticker := make([][]pixel, faceletCount)
	for idx, role := range assignment {
		if role.Kind != geometry.StickerRole {
			continue
		}
		pixelsBySticker[role.Sticker] = append(pixelsBySticker[role.Sticker], pixel{
			index: idx,
			trees: make(map[colorid.Color]*kdTree),
		})
	}

	e := &Estimator{
		pixelsBySticker: pixelsBySticker,
		imageSize:       imageSize,
		rng:             rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func toPoint(c geometry.RGB) point3 { return point3{c.R, c.G, c.B} }

// Calibrate records image as a ground-truth sample: groundTruth.ComesFrom(s)
// names which facelet currently sits at sticker s, and faceletColors gives
// that facelet's true color. Every pixel assigned to sticker s has its
// (r,g,b) sample inserted into that color's k-d tree.
func (e *Estimator) Calibrate(image []geometry.RGB, groundTruth permutation.Permutation, faceletColors []colorid.Color) error {
	if err := geometry.ValidateImage(image, e.imageSize); err != nil {
		return fmt.Errorf("%w: %w", ErrImageSizeMismatch, err)
	}

	for sticker, pixels := range e.pixelsBySticker {
		facelet := groundTruth.ComesFrom(sticker)
		color := faceletColors[facelet]

		for i := range pixels {
			p := &pixels[i]
			tree, ok := p.trees[color]
			if !ok {
				tree = &kdTree{}
				p.trees[color] = tree
			}
			tree.Insert(toPoint(image[p.index]))
		}
	}

	return nil
}

// clampNearestN bounds how many neighbors a density estimate draws from: at
// least one, never more than maxNearestN, and never more than a 1/maxFraction
// share of the available samples — matching the original inference core's
// sample-starved-tree guard.
func clampNearestN(available int) int {
	n := available / maxFraction
	if n > maxNearestN {
		n = maxNearestN
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Infer returns, for each sticker, a map from color to aggregated density
// likelihood observed in image. Colors never calibrated for a sticker's
// pixels are simply absent from that sticker's map.
func (e *Estimator) Infer(image []geometry.RGB) ([]map[colorid.Color]float64, error) {
	if err := geometry.ValidateImage(image, e.imageSize); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageSizeMismatch, err)
	}

	result := make([]map[colorid.Color]float64, len(e.pixelsBySticker))

	for sticker, pixels := range e.pixelsBySticker {
		perColor := map[colorid.Color][]float64{}

		for _, p := range pixels {
			query := toPoint(image[p.index])

			for color, tree := range p.trees {
				density := densityAt(tree, query, e.rng)
				perColor[color] = append(perColor[color], density)
			}
		}

		aggregated := make(map[colorid.Color]float64, len(perColor))
		for color, densities := range perColor {
			aggregated[color] = percentile(e.rng, densities, confidencePercentile)
		}
		result[sticker] = aggregated
	}

	return result, nil
}

// densityAt computes the Loftsgaarden–Quesenberry density estimate at query
// against tree: (n/N) / ((4/3)·π·d_n³), where d_n is the distance to the
// n-th nearest calibration sample.
func densityAt(tree *kdTree, query point3, rng *rand.Rand) float64 {
	total := tree.Size()
	if total == 0 {
		return 0
	}

	n := clampNearestN(total)
	neighbors := tree.NearestN(query, n)
	farthest := neighbors[len(neighbors)-1]
	dn := math.Sqrt(farthest.squaredDistance)

	if dn == 0 {
		// All n nearest samples coincide with query: treat as maximally dense.
		return math.Inf(1)
	}

	return (float64(n) / float64(total)) / (unitSphereVolumeCoefficient * dn * dn * dn)
}

// percentile returns the value at the given percentile of a descending sort
// of values, via a randomized Quickselect rather than a full sort.
func percentile(rng *rand.Rand, values []float64, frac float64) float64 {
	if len(values) == 0 {
		return 0
	}

	s := append([]float64(nil), values...)
	k := int(frac * float64(len(s)))
	if k >= len(s) {
		k = len(s) - 1
	}

	matchutil.Quickselect(rng, s, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}, k)

	return s[k]
}
