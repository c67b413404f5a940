package prospect

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrInvalidWeights     = errors.New("invalid weights")
)
