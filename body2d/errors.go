package body2d

import "errors"

// ErrTooManyVertices is returned by NewConvexHull when the supplied
// vertex list exceeds MaxHullVertices.
var ErrTooManyVertices = errors.New("body2d: convex hull exceeds max vertex count")

// ErrDegenerateHull is returned by NewConvexHull for fewer than 3
// vertices, which cannot bound a non-zero area.
var ErrDegenerateHull = errors.New("body2d: convex hull needs at least 3 vertices")
