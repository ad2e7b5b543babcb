// Package errors defines all exported error sentinels for the exthash library.
//
// This is the single source of truth for error values. Both the top-level
// exthash package and its internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	ErrInvalidBucketCapacity = errors.New("exthash: bucket capacity must be at least 1")
	ErrDepthTooLarge         = errors.New("exthash: initial global depth exceeds maximum (30)")
)

// Operation errors
var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	// The table is left unchanged; the returned slot is still the key's
	// current address.
	ErrDuplicateKey = errors.New("exthash: duplicate key")
)
