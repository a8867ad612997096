package solver

import "errors"

// ErrMissingBody is returned whenever a contact or joint names an
// entity the BodyAccessor has no Body2D for.
var ErrMissingBody = errors.New("solver: missing body for entity")
