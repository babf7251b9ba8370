package cvmatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvmatch/cvmatch"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/internal/fixture"
	"github.com/katalvlaran/cvmatch/permutation"
)

func solvedImage(red, blue geometry.RGB) []geometry.RGB {
	return []geometry.RGB{red, blue, red, blue}
}

func TestCVProcessorCalibrateThenProcessImageRecoversSolvedState(t *testing.T) {
	puzzle, red, blue, err := fixture.TwoPieceSwap()
	require.NoError(t, err)
	_ = red
	_ = blue

	assignment := []geometry.PixelRole{
		geometry.NewStickerRole(0),
		geometry.NewStickerRole(1),
		geometry.NewStickerRole(2),
		geometry.NewStickerRole(3),
	}

	p, err := cvmatch.New(puzzle, 4, assignment)
	require.NoError(t, err)

	identity, err := permutation.FromGoesTo([]int{0, 1, 2, 3})
	require.NoError(t, err)

	redPixel := geometry.RGB{R: 0.9, G: 0.05, B: 0.05}
	bluePixel := geometry.RGB{R: 0.05, G: 0.05, B: 0.9}
	image := solvedImage(redPixel, bluePixel)

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Calibrate(image, identity))
	}

	perm, _, ok := p.ProcessImage(image)
	require.True(t, ok)
	require.True(t, perm.Equal(identity))
}

func TestCVProcessorNewRejectsBadAssignmentLength(t *testing.T) {
	puzzle, _, _, err := fixture.TwoPieceSwap()
	require.NoError(t, err)

	_, err = cvmatch.New(puzzle, 4, []geometry.PixelRole{geometry.NewStickerRole(0)})
	require.ErrorIs(t, err, geometry.ErrAssignmentLengthMismatch)
}

func TestCVProcessorMaskAcceptsHint(t *testing.T) {
	puzzle, _, _, err := fixture.TwoPieceSwap()
	require.NoError(t, err)

	assignment := []geometry.PixelRole{
		geometry.NewStickerRole(0),
		geometry.NewStickerRole(1),
		geometry.NewStickerRole(2),
		geometry.NewStickerRole(3),
	}
	p, err := cvmatch.New(puzzle, 4, assignment)
	require.NoError(t, err)

	// Mask must not panic even though nothing yet consumes it.
	p.Mask([]geometry.MaskEntry{{Face: 0, WhiteBalance: false}})
}
