package locale

import (
	"time"

	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Service is the host primitive behind locale- and clock-dependent helpers.
// Implementations must be safe for concurrent use.
type Service interface {
	// Now returns the current instant.
	Now() time.Time
	// Location returns the zone used as "local time".
	Location() *time.Location
	// FormatDecimal renders value, any integer or float kind, in decimal style.
	FormatDecimal(value any, opts DecimalOptions) (string, error)
}

// DecimalOptions tunes FormatDecimal.
type DecimalOptions struct {
	// Locale is a BCP 47 tag; empty means the service default.
	Locale string
	// GroupingSeparator replaces the locale's digit group separator when present.
	GroupingSeparator optional.Option[string]
	// MinFractionDigits pads the fraction with zeros up to this many digits.
	MinFractionDigits int
	// MaxFractionDigits caps the fraction; absent means the locale default (3).
	MaxFractionDigits optional.Option[int]
}
