package contactmat

import "errors"

// ErrMissingBody is returned by Build when a contact names an entity
// the BodyProvider has no Body2D for.
var ErrMissingBody = errors.New("contactmat: missing body for entity")
