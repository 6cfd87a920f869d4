// Package numfmt formats and converts numbers for display: human readable
// byte sizes, digit grouping, currency strings and compact decimals.
//
// Grouping and currency output is locale-aware. Locale data comes from a
// locale.Service (golang.org/x/text by default), so tests can pin the locale
// with locale.Fixed:
//
//	numfmt.HumanReadableSize(2048)                                // "2.00 kb"
//	numfmt.CommaGrouped(1_000_000)                                // "1,000,000"
//	numfmt.CommaGrouped(1_000_000, numfmt.GroupingSeparator(" ")) // "1 000 000"
//	numfmt.ToCurrency(10000)                                      // "10,000 $"
//	numfmt.ToCurrency(-5, numfmt.Symbol("€"), numfmt.SymbolTrailing(false)) // "€ -5"
//	numfmt.Clean(2.456)                                           // "2.46"
//
// The package-level helpers use a Formatter backed by locale.Default(). Build
// your own with New to choose the locale service or a logger:
//
//	f := numfmt.New(numfmt.WithService(host), numfmt.WithLogger(log))
//
// # Error handling
//
// Nothing here returns an error. CommaGrouped returns "0" and ToCurrency
// returns the configured fallback when the locale service cannot format the
// value; the reason is logged at DEBUG level.
package numfmt
