package pipeline

import "errors"

// ErrMissingBody is returned whenever an entity reached by the physics
// sub-pipeline owns no Body2D component.
var ErrMissingBody = errors.New("pipeline: missing body for entity")
