package geometry

import "errors"

// ErrAssignmentLengthMismatch indicates a pixel assignment's length did not
// equal the declared image size.
var ErrAssignmentLengthMismatch = errors.New("geometry: pixel assignment length does not match image size")

// ErrStickerOutOfRange indicates a Sticker role referenced a sticker index
// outside [0, F).
var ErrStickerOutOfRange = errors.New("geometry: sticker index out of range")

// ErrImageLengthMismatch indicates an image's length did not equal the
// declared image size.
var ErrImageLengthMismatch = errors.New("geometry: image length does not match image size")
