// Package matchutil provides the two numeric primitives the rest of the
// matcher builds on: randomized quickselect for percentile computation, and
// maximum-weight bipartite matching via a potential-based (Hungarian)
// algorithm over tight edges.
//
// Both are grounded on the collaborator's own from-scratch implementations
// (a generic quickselect and a dual-variable Hungarian solver) rather than
// a general-purpose optimization library, because both must reproduce
// exact, deterministic-given-a-seed behavior the matcher's k-best
// enumeration depends on (stable tie-breaking, ε-tight-edge semantics).
package matchutil

// Epsilon is the tolerance used to decide whether a reduced cost is "tight"
// and whether a potential relaxation made genuine progress.
const Epsilon = 1e-9
