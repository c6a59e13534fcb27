package domain

import "errors"

var (
	// ErrConfiguration marks caller-supplied settings rejected before any
	// randomness is consumed.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvariant marks an internal invariant violation. It is fatal for
	// the sample being generated and is never retried.
	ErrInvariant = errors.New("internal invariant violation")
)
