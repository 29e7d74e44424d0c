package peak

import "errors"

// Errors returned by Extract. Flank and boundary errors are wrapped with
// context; match them with errors.Is.
var (
	ErrInsufficientData = errors.New("peak: insufficient data")
	// ErrNoBoundaryFound reports that the curve stays strictly above a flank
	// line from the apex to the data edge. A sample counts as a crossing when
	// y - line <= 0, so a perfectly flat curve crosses at its apex and
	// yields a one-sample, zero-area Result (see Result.Finite) instead.
	ErrNoBoundaryFound = errors.New("peak: no baseline crossing found")
	ErrLengthMismatch  = errors.New("peak: x and y must have same length")
	ErrInvalidBounds   = errors.New("peak: bounds must be finite with low <= high")
)
