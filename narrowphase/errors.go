package narrowphase

import "errors"

// ErrMissingShapeData is returned by Generate when a pair names an
// entity the ShapeProvider has no shape or world-cache data for.
var ErrMissingShapeData = errors.New("narrowphase: missing shape data for entity")
