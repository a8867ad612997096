package ccd

import "errors"

// ErrMissingBody is returned whenever a broadphase pair names an entity
// the BodyProvider has no Body2D for.
var ErrMissingBody = errors.New("ccd: missing body for entity")

// ErrMissingShapeData is returned whenever a broadphase pair names an
// entity the BodyProvider has no Shape2D for.
var ErrMissingShapeData = errors.New("ccd: missing shape data for entity")
