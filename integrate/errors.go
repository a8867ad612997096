package integrate

import "errors"

// ErrMissingBody is returned whenever an entity has no Body2D.
var ErrMissingBody = errors.New("integrate: missing body for entity")
