package engine

import "errors"

// Sentinel errors for engine operations.
var (
	// ErrInvalidPattern indicates a malformed individual glob pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrMalformedDefinition indicates an unusable filter definition document.
	ErrMalformedDefinition = errors.New("malformed filter definition")
	// ErrUnknownQuantifier indicates an unrecognized aggregation mode name.
	ErrUnknownQuantifier = errors.New("unknown quantifier")
)
