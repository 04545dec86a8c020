// Package common defines sentinel errors and small helpers shared by the
// storage, service and CLI layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage faults.
	ErrStorageCorrupt     = errors.New("storage corrupt")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
