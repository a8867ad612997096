// Package contactmat implements the contact-material builder: per
// spec.md §4.7, it resolves each contact's two materials (entity
// component, then world-default resource, then the built-in default),
// looks up the mixing rule for that material-id pair, and computes the
// combined friction and an effective restitution that zeroes out for
// slow contacts to suppress resting-contact jitter.
package contactmat
