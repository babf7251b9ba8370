// Package cvmatch is the public entry point of this module: it wires a
// puzzle's geometry to a color density estimator and a whole-puzzle
// composer, giving callers a single Calibrate/ProcessImage surface.
package cvmatch
