package permutation

import "errors"

// ErrOutOfRange indicates a mapping referenced a facelet index outside
// [0, F).
var ErrOutOfRange = errors.New("permutation: facelet index out of range")

// ErrNotBijective indicates a mapping is not a permutation (a target index
// appears more than once, or some index is never targeted).
var ErrNotBijective = errors.New("permutation: mapping is not a bijection")
