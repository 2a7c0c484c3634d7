package plot

import "errors"

// Sentinel errors shared by the plot packages.
var (
	// ErrDegenerateRange is returned when an interval has zero width, so no
	// finite scale factor maps it onto the axes.
	ErrDegenerateRange = errors.New("plot: degenerate range")

	// ErrNotFinite is returned when a limit or coordinate is NaN or infinite.
	ErrNotFinite = errors.New("plot: value is not finite")
)
