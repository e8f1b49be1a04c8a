package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Note that resolution
// failures never surface as errors from MapIdentifiers; they become
// tagged states in the result map instead.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedSource indicates an unknown source database name.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrMapperClosed indicates the mapper has been closed.
	ErrMapperClosed = errors.New("mapper closed")

	// ErrRateLimited indicates the upstream rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
