package report

import "errors"

// Sentinel error kinds for callers that turn a parse outcome into an error.
var (
	ErrParseReport = errors.New("report must have at least 3 non-blank lines")
	ErrNoRatings   = errors.New("no valid numeric ratings found")
)
