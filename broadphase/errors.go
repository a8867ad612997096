package broadphase

import "errors"

// ErrUnknownEntity is returned by Remove for an entity the SAP has no
// endpoints for.
var ErrUnknownEntity = errors.New("broadphase: unknown entity")
