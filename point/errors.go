package point

import "errors"

// ErrIndexOutOfRange is returned when a point is indexed with an ordinal
// outside its coordinate range (0-1 for affine, 0-2 for Jacobian).
var ErrIndexOutOfRange = errors.New("point: index out of range")
