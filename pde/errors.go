package pde

import "errors"

var (
	// ErrUnknownPDE is returned by New for a name outside the registry.
	ErrUnknownPDE = errors.New("pde: unknown equation name")

	// ErrBadLevel is returned for a negative grid level.
	ErrBadLevel = errors.New("pde: level must be non-negative")

	// ErrBadDegree is returned for a non-positive basis degree.
	ErrBadDegree = errors.New("pde: degree must be positive")
)
