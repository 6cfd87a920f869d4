package locale

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// groupProbe has enough digits to show a group separator in every CLDR locale.
const groupProbe = 1234567

// ParseTag parses a BCP 47 language tag, wrapping failures in ErrInvalidLocale.
func ParseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, errors.Join(ErrInvalidLocale, err)
	}
	return tag, nil
}

// exactNumber widens value to int64, uint64 or float64 so integers reach
// x/text without a lossy float conversion. Named numeric types are accepted.
func exactNumber(value any) (any, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrNotFinite
		}
		return f, nil
	default:
		return nil, ErrUnsupportedNumber
	}
}

func formatDecimal(fallback language.Tag, value any, opts DecimalOptions) (string, error) {
	num, err := exactNumber(value)
	if err != nil {
		return "", err
	}

	tag := fallback
	if opts.Locale != "" {
		t, err := ParseTag(opts.Locale)
		if err != nil {
			return "", err
		}
		tag = t
	}

	minDigits := max(opts.MinFractionDigits, 0)
	var numOpts []number.Option
	if minDigits > 0 {
		numOpts = append(numOpts, number.MinFractionDigits(minDigits))
	}
	if maxDigits, ok := opts.MaxFractionDigits.Get(); ok {
		numOpts = append(numOpts, number.MaxFractionDigits(max(maxDigits, minDigits)))
	}

	p := message.NewPrinter(tag)
	out := p.Sprint(number.Decimal(num, numOpts...))

	if sep, ok := opts.GroupingSeparator.Get(); ok {
		if group := groupSeparator(p); group != "" && group != sep {
			out = strings.ReplaceAll(out, group, sep)
		}
	}

	return out, nil
}

// groupSeparator returns the locale's digit group separator as printed by p,
// or "" when the locale does not group digits.
func groupSeparator(p *message.Printer) string {
	probe := p.Sprint(number.Decimal(groupProbe))

	var sep strings.Builder
	seenDigit := false
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if sep.Len() > 0 {
				break
			}
			seenDigit = true
			continue
		}
		if seenDigit {
			sep.WriteRune(r)
		}
	}
	return sep.String()
}
