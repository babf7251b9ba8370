package density

import "errors"

// ErrImageSizeMismatch indicates an image passed to Calibrate or Infer did
// not have the length the estimator was constructed with.
var ErrImageSizeMismatch = errors.New("density: image length does not match estimator's image size")
