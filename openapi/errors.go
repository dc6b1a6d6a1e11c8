package openapi

import "errors"

// Validation errors. Every error returned by a constructor or by
// Document.UpdateInfo wraps exactly one of these, so callers can match
// the kind with errors.Is.
var (
	// ErrInvalidArgument is returned when a recognized field has the wrong
	// type or shape.
	ErrInvalidArgument = errors.New("openapi: invalid argument")

	// ErrInvalidFormat is returned when a URL or email address is malformed.
	ErrInvalidFormat = errors.New("openapi: invalid format")

	// ErrInvalidVersion is returned when the OpenAPI version is not a valid
	// semantic version.
	ErrInvalidVersion = errors.New("openapi: invalid semantic version")
)
