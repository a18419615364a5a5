package services

import "errors"

// Caller errors detected eagerly at the planning boundary, before any
// computation begins. Neither is retryable.
var (
	// ErrInvalidInput marks an unusable system catalogue (empty, or
	// duplicate system names).
	ErrInvalidInput = errors.New("planner: invalid input")

	// ErrInvalidConfiguration marks an unusable planning configuration,
	// such as a non-positive jump range.
	ErrInvalidConfiguration = errors.New("planner: invalid configuration")
)
