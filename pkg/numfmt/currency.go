package numfmt

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/valuekit/pkg/locale"
	"github.com/dmitrymomot/valuekit/pkg/logger"
	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// CurrencyConfig describes how a currency amount is rendered.
type CurrencyConfig struct {
	// Symbol is placed next to the amount, separated by one space.
	Symbol string
	// SymbolTrailing puts the symbol after the amount ("10 $") instead of before it ("$ 10").
	SymbolTrailing bool
	// MinimumFractionDigits is the exact number of fraction digits rendered.
	MinimumFractionDigits int
	// Fallback is returned when the amount cannot be formatted.
	Fallback string
	// Locale overrides the formatter's default locale for digit grouping.
	Locale string
}

// DefaultCurrencyConfig returns "$", trailing, no fraction digits and an
// empty fallback.
func DefaultCurrencyConfig() CurrencyConfig {
	return CurrencyConfig{
		Symbol:         "$",
		SymbolTrailing: true,
	}
}

// CurrencyOption adjusts a CurrencyConfig.
type CurrencyOption func(*CurrencyConfig)

// Symbol sets the currency symbol.
func Symbol(s string) CurrencyOption {
	return func(c *CurrencyConfig) { c.Symbol = s }
}

// SymbolTrailing places the symbol after the amount when true and before it otherwise.
func SymbolTrailing(trailing bool) CurrencyOption {
	return func(c *CurrencyConfig) { c.SymbolTrailing = trailing }
}

// MinimumFractionDigits sets the number of fraction digits. Negative values
// are treated as zero.
func MinimumFractionDigits(n int) CurrencyOption {
	return func(c *CurrencyConfig) { c.MinimumFractionDigits = max(n, 0) }
}

// Fallback sets the text returned when the amount cannot be formatted.
func Fallback(s string) CurrencyOption {
	return func(c *CurrencyConfig) { c.Fallback = s }
}

// CurrencyLocale formats the amount with the given BCP 47 tag instead of the formatter default.
func CurrencyLocale(tag string) CurrencyOption {
	return func(c *CurrencyConfig) { c.Locale = tag }
}

// ToCurrency renders value as a grouped amount with a currency symbol.
//
//	f.ToCurrency(10000)                                   // "10,000 $"
//	f.ToCurrency(-10000, SymbolTrailing(false))           // "$ -10,000"
//	f.ToCurrency(1.005, MinimumFractionDigits(2))         // "1.00 $"
//
// The sign always sits directly before the digits. The configured fallback
// is returned for non-finite values and symbols with control characters.
func (f *Formatter) ToCurrency(value float64, opts ...CurrencyOption) string {
	return f.currency(value, currencyConfig(opts))
}

// FormatCurrency is ToCurrency with an explicit configuration.
func (f *Formatter) FormatCurrency(value float64, cfg CurrencyConfig) string {
	return f.currency(value, cfg)
}

func currencyConfig(opts []CurrencyOption) CurrencyConfig {
	cfg := DefaultCurrencyConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (f *Formatter) currency(value any, cfg CurrencyConfig) string {
	if strings.ContainsFunc(cfg.Symbol, unicode.IsControl) {
		f.log.Debug("currency formatting failed",
			logger.Input(value),
			logger.Fallback(cfg.Fallback),
			logger.Error(ErrInvalidSymbol),
		)
		return cfg.Fallback
	}

	digits := max(cfg.MinimumFractionDigits, 0)
	amount, err := f.svc.FormatDecimal(value, locale.DecimalOptions{
		Locale:            cfg.Locale,
		MinFractionDigits: digits,
		MaxFractionDigits: optional.Some(digits),
	})
	if err != nil {
		f.log.Debug("currency formatting failed",
			logger.Input(value),
			logger.Locale(cfg.Locale),
			logger.Fallback(cfg.Fallback),
			logger.Error(err),
		)
		return cfg.Fallback
	}

	if cfg.SymbolTrailing {
		return amount + " " + cfg.Symbol
	}
	return cfg.Symbol + " " + amount
}
