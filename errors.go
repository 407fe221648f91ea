package respack

import "errors"

// Sentinel errors.
var (
	// ErrTypeNotSupported is returned when a resource is opened under a
	// type the pack carries no root for.
	ErrTypeNotSupported = errors.New("respack: resource type not supported")
)
