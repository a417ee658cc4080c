package rangecache

import "errors"

var (
	// ErrInvalidRange is returned when left > right or either bound falls outside the slice.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidIndex is returned when an update targets a position outside the slice.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidCapacity is returned by New for a capacity that is not positive.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")

	// ErrInvalidSumFunc is returned by New when the summation function is nil
	// or was built for a different element type.
	ErrInvalidSumFunc = errors.New("invalid sum function")
)
