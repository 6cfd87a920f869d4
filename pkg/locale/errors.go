package locale

import "errors"

var (
	// ErrInvalidLocale is returned when a BCP 47 language tag cannot be parsed.
	ErrInvalidLocale = errors.New("locale: invalid language tag")

	// ErrInvalidTimezone is returned when an IANA time zone name cannot be loaded.
	ErrInvalidTimezone = errors.New("locale: invalid time zone")

	// ErrNotFinite is returned when formatting NaN or an infinity.
	ErrNotFinite = errors.New("locale: value is not a finite number")

	// ErrUnsupportedNumber is returned when FormatDecimal gets a value that is
	// not an integer or floating-point number.
	ErrUnsupportedNumber = errors.New("locale: unsupported number type")
)
