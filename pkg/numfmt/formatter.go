package numfmt

import (
	"log/slog"

	"github.com/dmitrymomot/valuekit/pkg/locale"
	"github.com/dmitrymomot/valuekit/pkg/logger"
	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// DefaultGroupingSeparator is used by CommaGrouped unless overridden.
const DefaultGroupingSeparator = ","

// Formatter renders numbers through a locale.Service. The zero value is not
// usable; build one with New. A Formatter is immutable and safe for
// concurrent use.
type Formatter struct {
	svc locale.Service
	log *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithService sets the locale service. Nil values are ignored.
func WithService(svc locale.Service) Option {
	return func(f *Formatter) {
		if svc != nil {
			f.svc = svc
		}
	}
}

// WithLogger sets the logger used to report fallbacks. Nil values are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.log = l
		}
	}
}

// New creates a Formatter backed by locale.Default() unless configured otherwise.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		svc: locale.Default(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("numfmt"))
	return f
}

// GroupOption configures CommaGrouped.
type GroupOption func(*groupConfig)

type groupConfig struct {
	locale    string
	separator string
}

// InLocale formats with the given BCP 47 tag instead of the formatter default.
func InLocale(tag string) GroupOption {
	return func(c *groupConfig) {
		c.locale = tag
	}
}

// GroupingSeparator sets the string placed between digit groups.
func GroupingSeparator(sep string) GroupOption {
	return func(c *groupConfig) {
		c.separator = sep
	}
}

// CommaGrouped renders value in decimal style with digit grouping. Whole
// numbers have no fraction; other values keep up to three fraction digits.
// It returns "0" when the locale cannot be parsed or the value is not finite.
func (f *Formatter) CommaGrouped(value float64, opts ...GroupOption) string {
	return f.group(value, opts)
}

// group keeps value in its own numeric type so integers format exactly.
func (f *Formatter) group(value any, opts []GroupOption) string {
	cfg := groupConfig{separator: DefaultGroupingSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	out, err := f.svc.FormatDecimal(value, locale.DecimalOptions{
		Locale:            cfg.locale,
		GroupingSeparator: optional.Some(cfg.separator),
	})
	if err != nil {
		f.log.Debug("digit grouping failed",
			logger.Input(value),
			logger.Locale(cfg.locale),
			logger.Fallback("0"),
			logger.Error(err),
		)
		return "0"
	}
	return out
}

var defaultFormatter = New()

// CommaGrouped formats value with the default Formatter. Integer types are
// formatted exactly at any magnitude.
func CommaGrouped[T Number](value T, opts ...GroupOption) string {
	return GroupWith(defaultFormatter, value, opts...)
}

// ToCurrency formats value with the default Formatter. Integer types are
// formatted exactly at any magnitude.
func ToCurrency[T Number](value T, opts ...CurrencyOption) string {
	return CurrencyWith(defaultFormatter, value, opts...)
}

// GroupWith is CommaGrouped on f without converting value to float64.
func GroupWith[T Number](f *Formatter, value T, opts ...GroupOption) string {
	return f.group(value, opts)
}

// CurrencyWith is Formatter.ToCurrency without converting value to float64.
func CurrencyWith[T Number](f *Formatter, value T, opts ...CurrencyOption) string {
	return f.currency(value, currencyConfig(opts))
}
