package pcset

import "errors"

var (
	// ErrInvalidPitchClass is returned whenever a pitch class, interval
	// or index number falls outside 0-11.
	ErrInvalidPitchClass = errors.New("pitch class, interval, or index number must be 0-11")
	ErrMalformedSet      = errors.New("malformed pitch-class set")
)
