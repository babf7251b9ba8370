// Package geometry defines the contracts this core consumes from the
// puzzle-geometry collaborator (out of scope for this core: piece/orbit
// definitions, facelet coloring, and move generators are authored
// elsewhere). It holds only the data shapes the matcher reads — Puzzle,
// Orbit, Piece, OrientationNumber, and the per-pixel assignment/role types
// — plus the image and mask types the public CVProcessor API exchanges
// with its caller.
//
// Nothing here builds geometry from move notation or solves for orbits;
// internal/fixture hand-builds small synthetic puzzles for tests the same
// way the collaborator's own unit tests hand-build cost-tensor literals
// instead of invoking a full geometry parser.
package geometry
