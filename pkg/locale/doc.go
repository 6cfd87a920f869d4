// Package locale isolates everything that depends on the host environment:
// the current instant, the local time zone and locale-aware decimal
// formatting.
//
// Formatting and time helpers elsewhere in valuekit accept a Service instead
// of calling time.Now or reading the process locale themselves, so they can
// be tested with a Fixed service:
//
//	svc := locale.Fixed{
//	    At:     time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
//	    Zone:   time.FixedZone("MMT", 6*3600+30*60),
//	    Locale: "en-US",
//	}
//
// Production code uses Host, built with New or Default:
//
//	host, err := locale.New(locale.WithLocale("de-DE"), locale.WithTimezone("Europe/Berlin"))
//
// Decimal formatting is delegated to golang.org/x/text (CLDR data); this
// package only chooses the options and swaps the grouping separator when the
// caller asks for a specific one.
//
// # Error Handling
//
// FormatDecimal accepts any integer or floating-point kind. Integers are
// formatted exactly, including values beyond 2^53.
//
// FormatDecimal returns ErrInvalidLocale for tags that cannot be parsed,
// ErrNotFinite for NaN and infinities and ErrUnsupportedNumber for values
// that are not numbers. New returns ErrInvalidLocale or
// ErrInvalidTimezone.
//
// Host and Fixed are immutable and safe for concurrent use.
package locale
