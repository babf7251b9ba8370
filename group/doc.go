// Package group models a permutation group over facelets and answers
// membership queries via a Schreier–Sims stabilizer chain.
//
// The puzzle-geometry collaborator normally owns the "real" group (move
// generators, piece assignments, facelet colors); this package provides a
// working, from-scratch implementation so the matcher's group-membership
// invariants can actually be built and tested standalone.
//
// Construction builds a base and strong generating set incrementally:
// each level picks a base point moved by some generator, computes its orbit
// by breadth-first search over generator images (the same frontier-queue
// shape a graph BFS uses for traversal, generalized from graph neighbors to
// group-action images), derives Schreier generators for the point
// stabilizer via Schreier's lemma, and recurses. Membership sifts a
// candidate permutation down the chain, stripping off the coset
// representative at each level; what remains must be the identity.
package group
