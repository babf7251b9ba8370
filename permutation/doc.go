// Package permutation implements bijections over [0,F) — the facelet
// permutations the matcher reasons about.
//
// A Permutation never shrinks or grows: it is constructed once, for a fixed
// facelet count F, and is immutable afterward. Two views are kept in sync —
// GoesTo (where a facelet's content moves to) and ComesFrom (which facelet's
// content now occupies a given position) — because both the orbit matcher
// and the whole-puzzle composer need O(1) lookups in either direction.
//
// Cycles() decomposes GoesTo into disjoint, non-trivial cycles; FromCycles
// is its inverse, used by the whole-puzzle composer to glue together the
// per-orbit permutations it draws from independent k-best streams.
package permutation
