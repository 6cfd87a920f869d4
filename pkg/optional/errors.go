package optional

import "errors"

// ErrNone is returned by OrThrow when the option is empty and no error builder was supplied.
var ErrNone = errors.New("optional: value is absent")
