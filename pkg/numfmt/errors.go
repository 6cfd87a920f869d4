package numfmt

import "errors"

// ErrInvalidSymbol is logged when a currency symbol contains control characters.
var ErrInvalidSymbol = errors.New("numfmt: currency symbol contains control characters")
