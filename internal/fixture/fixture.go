// Package fixture builds small synthetic puzzle geometries for tests, in
// place of a real puzzle-geometry parser (out of scope for this core).
package fixture

import (
	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/group"
	"github.com/katalvlaran/cvmatch/permutation"
)

type puzzle struct {
	faceletCount       int
	faceletColors      []colorid.Color
	orbits             []geometry.Orbit
	orientationNumbers []geometry.OrientationNumber
	permutationGroup   *group.PermutationGroup
}

func (p *puzzle) FaceletCount() int                                { return p.faceletCount }
func (p *puzzle) FaceletColors() []colorid.Color                   { return p.faceletColors }
func (p *puzzle) Orbits() []geometry.Orbit                         { return p.orbits }
func (p *puzzle) OrientationNumbers() []geometry.OrientationNumber { return p.orientationNumbers }
func (p *puzzle) PermutationGroup() *group.PermutationGroup        { return p.permutationGroup }

var _ geometry.Puzzle = (*puzzle)(nil)

// TwoPieceSwap builds a 4-facelet, single-orbit puzzle of two 2-sticker
// pieces, each with one "red" and one "blue" sticker (facelet colors
// red, blue, red, blue), that can swap places, with no relative twist on
// swap but a free 2-fold twist within each piece. Its one generator,
// "swap", exchanges the pieces.
func TwoPieceSwap() (geometry.Puzzle, colorid.Color, colorid.Color, error) {
	var interner colorid.Interner
	red := interner.Intern("red")
	blue := interner.Intern("blue")

	twistA, err := permutation.FromCycles(4, [][]int{{0, 1}})
	if err != nil {
		return nil, colorid.Color{}, colorid.Color{}, err
	}
	twistB, err := permutation.FromCycles(4, [][]int{{2, 3}})
	if err != nil {
		return nil, colorid.Color{}, colorid.Color{}, err
	}

	orbit := geometry.Orbit{
		Pieces: []geometry.Piece{
			{Stickers: []geometry.Sticker{0, 1}, Twist: twistA},
			{Stickers: []geometry.Sticker{2, 3}, Twist: twistB},
		},
		OrientationCount: 2,
	}

	swap, err := permutation.FromCycles(4, [][]int{{0, 2}, {1, 3}})
	if err != nil {
		return nil, colorid.Color{}, colorid.Color{}, err
	}

	faceletColors := []colorid.Color{red, blue, red, blue}
	g, err := group.New(4, faceletColors, []int{0, 0, 1, 1}, map[string]permutation.Permutation{
		"swap": swap,
	})
	if err != nil {
		return nil, colorid.Color{}, colorid.Color{}, err
	}

	p := &puzzle{
		faceletCount:       4,
		faceletColors:      faceletColors,
		orbits:             []geometry.Orbit{orbit},
		orientationNumbers: []geometry.OrientationNumber{0, 1, 0, 1},
		permutationGroup:   g,
	}

	return p, red, blue, nil
}
