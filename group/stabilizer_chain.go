package group

import "github.com/katalvlaran/cvmatch/permutation"

// level is one stage of a base-and-strong-generating-set chain: a base
// point, its orbit under the level's strong generators, and a transversal
// mapping each orbit point to a coset representative that sends the base
// point there.
type level struct {
	basePoint    int
	transversal  map[int]permutation.Permutation
	orbitOrdered []int // deterministic iteration order, for Schreier-generator construction
	generators   []permutation.Permutation
}

// StabilizerChain answers group-membership queries for a PermutationGroup
// via a Schreier–Sims base and strong generating set.
type StabilizerChain struct {
	facelets int
	levels   []level
}

// NewStabilizerChain builds the chain for g. The base is chosen greedily:
// at each level, the smallest facelet still moved by some remaining
// generator becomes the next base point.
func NewStabilizerChain(g *PermutationGroup) *StabilizerChain {
	return &StabilizerChain{
		facelets: g.FaceletCount(),
		levels:   buildLevels(g.FaceletCount(), g.Generators()),
	}
}

// NewStabilizerChainFromGenerators builds a chain directly from a facelet
// count and a set of generating permutations, bypassing PermutationGroup.
// Useful for tests and for any collaborator that only has raw generators.
func NewStabilizerChainFromGenerators(facelets int, generators []permutation.Permutation) *StabilizerChain {
	return &StabilizerChain{facelets: facelets, levels: buildLevels(facelets, generators)}
}

func buildLevels(facelets int, generators []permutation.Permutation) []level {
	gens := dedupNonIdentity(generators)
	if len(gens) == 0 {
		return nil
	}

	base := firstMovedPoint(facelets, gens)
	if base < 0 {
		return nil
	}

	transversal, orbitOrdered := orbitTransversal(facelets, base, gens)

	schreier := schreierGenerators(base, gens, transversal, orbitOrdered)

	lvl := level{
		basePoint:    base,
		transversal:  transversal,
		orbitOrdered: orbitOrdered,
		generators:   gens,
	}

	return append([]level{lvl}, buildLevels(facelets, schreier)...)
}

// firstMovedPoint returns the smallest facelet moved by at least one
// generator, or -1 if all generators are the identity.
func firstMovedPoint(facelets int, gens []permutation.Permutation) int {
	for pt := 0; pt < facelets; pt++ {
		for _, g := range gens {
			if g.GoesTo(pt) != pt {
				return pt
			}
		}
	}

	return -1
}

// orbitTransversal computes the orbit of base under gens via breadth-first
// search over generator images, along with a transversal permutation for
// each orbit point (a permutation sending base to that point).
func orbitTransversal(
	facelets, base int,
	gens []permutation.Permutation,
) (map[int]permutation.Permutation, []int) {
	transversal := map[int]permutation.Permutation{base: permutation.Identity(facelets)}
	ordered := []int{base}
	frontier := []int{base}

	for len(frontier) > 0 {
		var next []int
		for _, pt := range frontier {
			rep := transversal[pt]
			for _, g := range gens {
				img := g.GoesTo(pt)
				if _, ok := transversal[img]; ok {
					continue
				}
				transversal[img] = permutation.Compose(rep, g)
				ordered = append(ordered, img)
				next = append(next, img)
			}
		}
		frontier = next
	}

	return transversal, ordered
}

// schreierGenerators builds the Schreier generators of the stabilizer of
// base, per Schreier's lemma: for every orbit point pt with representative
// u_pt and every generator g, s = u_pt * g * inverse(u_{g(pt)}) stabilizes
// base. Identity results and exact duplicates are dropped.
func schreierGenerators(
	base int,
	gens []permutation.Permutation,
	transversal map[int]permutation.Permutation,
	orbitOrdered []int,
) []permutation.Permutation {
	seen := make(map[string]bool)
	var out []permutation.Permutation

	for _, pt := range orbitOrdered {
		uPt := transversal[pt]
		for _, g := range gens {
			img := g.GoesTo(pt)
			uImg := transversal[img]

			s := permutation.Compose(permutation.Compose(uPt, g), uImg.Inverse())
			if s.GoesTo(base) != base {
				// Schreier's lemma guarantees this; defensive only.
				continue
			}
			if isIdentityPerm(s) {
				continue
			}

			key := mappingKey(s.Minimal())
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}

	return out
}

func dedupNonIdentity(gens []permutation.Permutation) []permutation.Permutation {
	seen := make(map[string]bool)
	var out []permutation.Permutation

	for _, g := range gens {
		if isIdentityPerm(g) {
			continue
		}
		key := mappingKey(g.Minimal())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}

	return out
}

func isIdentityPerm(p permutation.Permutation) bool {
	for i := 0; i < p.Len(); i++ {
		if p.GoesTo(i) != i {
			return false
		}
	}

	return true
}

func mappingKey(mapping []int) string {
	b := make([]byte, 0, len(mapping)*4)
	for _, v := range mapping {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}

	return string(b)
}

// IsMember reports whether p belongs to the group this chain was built
// from. It sifts p down the chain, stripping the transversal representative
// for the image of each base point; p is a member iff the residual after
// all levels is the identity.
func (c *StabilizerChain) IsMember(p permutation.Permutation) bool {
	residual := p

	for _, lvl := range c.levels {
		img := residual.GoesTo(lvl.basePoint)

		rep, ok := lvl.transversal[img]
		if !ok {
			return false
		}

		residual = permutation.Compose(residual, rep.Inverse())
	}

	return isIdentityPerm(residual)
}
