package group

import "errors"

// ErrFaceletColorsLength indicates the facelet-color slice did not match
// the declared facelet count.
var ErrFaceletColorsLength = errors.New("group: facelet colors length does not match facelet count")

// ErrGeneratorLength indicates a generator permutation was not defined over
// the group's facelet count.
var ErrGeneratorLength = errors.New("group: generator is not defined over the group's facelet count")
