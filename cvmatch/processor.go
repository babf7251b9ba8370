package cvmatch

import (
	"github.com/katalvlaran/cvmatch/compose"
	"github.com/katalvlaran/cvmatch/density"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/permutation"
)

// CVProcessor recognizes a puzzle's state from photographs of it.
type CVProcessor struct {
	puzzle    geometry.Puzzle
	estimator *density.Estimator
	matcher   *compose.Matcher
	mask      []geometry.MaskEntry
}

// New builds a CVProcessor that recognizes puzzle in images of imageSize
// pixels, with each pixel classified by assignment.
func New(puzzle geometry.Puzzle, imageSize int, assignment []geometry.PixelRole) (*CVProcessor, error) {
	faceletCount := puzzle.FaceletCount()

	if err := geometry.ValidateAssignment(assignment, imageSize, faceletCount); err != nil {
		return nil, err
	}

	estimator, err := density.NewEstimator(assignment, imageSize, faceletCount)
	if err != nil {
		return nil, err
	}

	matcher, err := compose.NewMatcher(puzzle)
	if err != nil {
		return nil, err
	}

	return &CVProcessor{
		puzzle:    puzzle,
		estimator: estimator,
		matcher:   matcher,
	}, nil
}

// Calibrate records image as a ground-truth sample of the puzzle in state
// groundTruth, feeding the color density estimator. Must not be called
// concurrently with Calibrate or ProcessImage on the same CVProcessor.
func (p *CVProcessor) Calibrate(image []geometry.RGB, groundTruth permutation.Permutation) error {
	return p.estimator.Calibrate(image, groundTruth, p.puzzle.FaceletColors())
}

// ProcessImage infers the puzzle's most likely state from image, along
// with its log-likelihood. ok is false if image does not have the length
// the processor was built for, or if no permutation the puzzle's
// permutation group admits was ever reached by the search. Must not be called
// concurrently with Calibrate or ProcessImage on the same CVProcessor.
func (p *CVProcessor) ProcessImage(image []geometry.RGB) (permutation.Permutation, float64, bool) {
	logLikelihoods, err := p.estimator.Infer(image)
	if err != nil {
		return permutation.Permutation{}, 0, false
	}

	return p.matcher.MostLikely(logLikelihoods)
}

// Mask records per-pixel face/white-balance hints for a future masked
// inference pass. Not yet consumed by Calibrate or ProcessImage.
func (p *CVProcessor) Mask(mask []geometry.MaskEntry) {
	p.mask = append([]geometry.MaskEntry(nil), mask...)
}
