// Package orbitmatch implements Murty's k-best assignment search over one
// puzzle orbit: given per-sticker color log-likelihoods, it lazily produces
// candidate piece permutations for that orbit in non-increasing order
// of total log-likelihood, filtered to permutations the orbit's own
// orbit-restricted subgroup actually admits.
//
// This is grounded on the qvis puzzle-matching core's OrbitMatcher /
// MatchIter / OrbitHeapElt: a max-heap of partial search nodes, each
// carrying a 3-D allowed mask (piece spot, candidate piece, orientation), a
// cached best 2-D assignment, and Hungarian-matching log-likelihood. Popping
// a node yields one permutation; before it is dropped, it is split into one
// child per matched edge with that edge newly forbidden, deferred until the
// iterator is asked for its next result so a node that is never visited
// again is never split.
//
// The heap itself follows the same container/heap shape
// wbrown-img2ansi/kdtree.go and the puzzle-wide compose package use for
// their own bounded/lazy searches.
package orbitmatch
