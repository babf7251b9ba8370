package group

import (
	"sort"

	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/permutation"
)

// PermutationGroup is a finitely generated group of permutations over
// [0, F), together with the facelet coloring and piece assignment the
// puzzle-geometry collaborator associates with it. The matcher only ever
// reads these fields; they are fixed at construction.
type PermutationGroup struct {
	facelets         int
	colors           []colorid.Color
	pieceAssignments []int
	generatorNames   []string
	generators       map[string]permutation.Permutation
}

// New builds a PermutationGroup. pieceAssignments is opaque to this
// package; it is carried through for collaborators that need it (e.g. a
// real puzzle-geometry implementation) but is not interpreted here.
func New(
	facelets int,
	colors []colorid.Color,
	pieceAssignments []int,
	generators map[string]permutation.Permutation,
) (*PermutationGroup, error) {
	if len(colors) != facelets {
		return nil, ErrFaceletColorsLength
	}

	names := make([]string, 0, len(generators))
	for name, p := range generators {
		if p.Len() != facelets {
			return nil, ErrGeneratorLength
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return &PermutationGroup{
		facelets:         facelets,
		colors:           append([]colorid.Color(nil), colors...),
		pieceAssignments: append([]int(nil), pieceAssignments...),
		generatorNames:   names,
		generators:       generators,
	}, nil
}

// FaceletCount returns F, the number of facelets this group permutes.
func (g *PermutationGroup) FaceletCount() int { return g.facelets }

// FaceletColors returns the color assigned to each facelet.
func (g *PermutationGroup) FaceletColors() []colorid.Color {
	return append([]colorid.Color(nil), g.colors...)
}

// PieceAssignments returns the opaque piece-assignment data carried through
// from construction.
func (g *PermutationGroup) PieceAssignments() []int {
	return append([]int(nil), g.pieceAssignments...)
}

// Generators returns the group's named generating permutations, in a
// deterministic (name-sorted) order.
func (g *PermutationGroup) Generators() []permutation.Permutation {
	gens := make([]permutation.Permutation, 0, len(g.generatorNames))
	for _, name := range g.generatorNames {
		gens = append(gens, g.generators[name])
	}

	return gens
}

// RestrictToOrbit builds the subgroup obtained by replacing each generator's
// mapping with the identity on every facelet outside inOrbit. This is the
// "orbit-restricted subgroup" construction the orbit matcher needs:
// it lets an orbit's stabilizer chain answer membership questions using only
// the ambient group's action on that orbit's stickers.
func (g *PermutationGroup) RestrictToOrbit(inOrbit []bool) (*PermutationGroup, error) {
	restricted := make(map[string]permutation.Permutation, len(g.generatorNames))

	for _, name := range g.generatorNames {
		gen := g.generators[name]
		mapping := make([]int, g.facelets)
		for i := 0; i < g.facelets; i++ {
			if inOrbit[i] {
				mapping[i] = gen.GoesTo(i)
			} else {
				mapping[i] = i
			}
		}

		p, err := permutation.FromGoesTo(mapping)
		if err != nil {
			return nil, err
		}
		restricted[name] = p
	}

	return New(g.facelets, g.colors, g.pieceAssignments, restricted)
}
