// Package body2d defines the rigid-body and shape components the
// physics pipeline operates on: Body2D (pose, velocity, mass
// properties), Shape2D (Circle or ConvexHull), the world-space shape
// caches kept in sync with the body's pose, AABB2D (the broadphase
// bound), and the Material2D/MaterialTable2D pair used by the
// contact-material builder (spec.md §3, §4.7).
package body2d
