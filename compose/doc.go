// Package compose lazily merges each orbit's independent stream of
// candidate permutations into a single whole-puzzle stream, in
// non-increasing order of combined log-likelihood, filtered to permutations
// the puzzle's full permutation group actually admits.
//
// This mirrors the qvis puzzle-matching core's top-level Matcher /
// PuzzleIter / SavedIter: SavedIter memoizes each orbit's lazily-produced
// results for random access by index, and PuzzleIter keeps a max-heap of
// index vectors (one index per orbit) so the next-best combination across
// orbits is always known without materializing the full cross product.
package compose
