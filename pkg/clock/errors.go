package clock

import "errors"

// ErrInvalidTimeOfDay is returned when a time of day is not "H:M" with integer fields.
var ErrInvalidTimeOfDay = errors.New("clock: invalid time of day")
