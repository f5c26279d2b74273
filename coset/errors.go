package coset

import "errors"

var (
	// ErrCosetLimit is returned when enumeration defines more cosets
	// than Options.MaxCosets allows, or when a generator word carries
	// an exponent whose trace alone would cross that limit. For a
	// subgroup of infinite index this is the expected outcome.
	ErrCosetLimit = errors.New("coset: enumeration exceeded the coset limit")

	// ErrNotTransitive is returned by Representatives when the given
	// permutations do not move coset 0 onto every point.
	ErrNotTransitive = errors.New("coset: permutations do not act transitively")

	// ErrOptionViolation is returned when Options carry an invalid
	// value, e.g. a non-positive MaxCosets.
	ErrOptionViolation = errors.New("coset: option violation")
)
