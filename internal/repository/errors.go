package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (e.g. a submission token collision). Callers may treat it as retryable.
var ErrDuplicate = errors.New("duplicate record")
