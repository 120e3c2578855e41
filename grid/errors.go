package grid

import "errors"

var (
	// ErrBadLevel indicates a negative max level.
	ErrBadLevel = errors.New("grid: level must be >= 0")

	// ErrBadDims indicates a non-positive dimension count.
	ErrBadDims = errors.New("grid: num dims must be > 0")

	// ErrBadChunkCount indicates a chunk count outside [1, table size].
	ErrBadChunkCount = errors.New("grid: chunk count must be in [1, table size]")
)
