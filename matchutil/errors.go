package matchutil

import "errors"

// ErrNonSquare indicates the cost table passed to MaximumMatching was not
// square.
var ErrNonSquare = errors.New("matchutil: cost table is not square")
