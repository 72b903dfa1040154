package catalog

import "errors"

// ErrUnknownCurve is returned by Lookup when no curve is registered under
// the requested name.
var ErrUnknownCurve = errors.New("catalog: unknown curve name")
