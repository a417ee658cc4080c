package bench

import "errors"

var (
	// ErrChecksumMismatch is returned when the cached run answers differently from the baseline.
	ErrChecksumMismatch = errors.New("cached run disagrees with baseline")

	// ErrUnknownFormat is returned by Report.Write for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrInvalidConfig is returned when the benchmark configuration is unusable.
	ErrInvalidConfig = errors.New("invalid benchmark config")
)
