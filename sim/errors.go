package sim

import "errors"

// Sentinel errors returned by the simulation core. Callers branch with
// errors.Is; everything else raised by this package is a programming error
// and panics.
var (
	// ErrInvalidParameter reports a non-positive count, rate, or server
	// parameter. Raised before any event is scheduled.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoData reports statistics requested over an empty or zero-duration
	// run.
	ErrNoData = errors.New("no data")
)
