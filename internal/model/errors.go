package model

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP status codes;
// repositories and services wrap them with context via fmt.Errorf("%w").
var (
	// ErrMissingFields means a required request field was absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidAction means the requested action is not in the recognized set.
	ErrInvalidAction = errors.New("invalid action")
	// ErrNotFound means a referenced user or content row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrLookupFailure means a collaborator store was unavailable.
	ErrLookupFailure = errors.New("lookup failure")
)
