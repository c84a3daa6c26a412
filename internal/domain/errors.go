package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// ride (or page of rides) does not exist in the database.
// Handlers map this to the RIDES_NOT_FOUND_ERROR payload.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by the service layer when input fails request
// validation (out-of-range coordinate, empty or non-string name).
// Handlers map this to the VALIDATION_ERROR payload, preserving the message.
var ErrValidation = errors.New("validation error")
