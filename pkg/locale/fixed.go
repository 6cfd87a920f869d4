package locale

import (
	"time"

	"golang.org/x/text/language"
)

// Fixed is a Service frozen at one instant, zone and locale. Zero fields fall
// back to the Unix epoch, UTC and DefaultLocale.
type Fixed struct {
	At     time.Time
	Zone   *time.Location
	Locale string
}

func (f Fixed) Now() time.Time {
	if f.At.IsZero() {
		return time.Unix(0, 0)
	}
	return f.At
}

func (f Fixed) Location() *time.Location {
	if f.Zone == nil {
		return time.UTC
	}
	return f.Zone
}

func (f Fixed) FormatDecimal(value any, opts DecimalOptions) (string, error) {
	tag := language.MustParse(DefaultLocale)
	if f.Locale != "" {
		t, err := ParseTag(f.Locale)
		if err != nil {
			return "", err
		}
		tag = t
	}
	return formatDecimal(tag, value, opts)
}

var (
	_ Service = (*Host)(nil)
	_ Service = Fixed{}
)
