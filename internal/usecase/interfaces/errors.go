package interfaces

import "errors"

// ErrNotOwner is returned by ownership-gated repository writes when the
// record exists but belongs to another company. Updates report absence the
// usual way, with a zero-value entity and a nil error.
var ErrNotOwner = errors.New("record owned by another company")

// ErrRecordNotFound is returned by deletes, which have no zero value to
// signal absence with.
var ErrRecordNotFound = errors.New("record not found")
