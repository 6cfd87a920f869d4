package locale_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/locale"
	"github.com/dmitrymomot/valuekit/pkg/optional"
)

type cents int64

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	svc := locale.Fixed{Locale: "en-US"}

	tests := []struct {
		name     string
		value    any
		opts     locale.DecimalOptions
		expected string
	}{
		{name: "integer", value: 1000000, expected: "1,000,000"},
		{name: "small integer", value: 999, expected: "999"},
		{name: "negative", value: -1234, expected: "-1,234"},
		{name: "fraction capped at three digits", value: 1234.56789, expected: "1,234.568"},
		{name: "custom grouping separator", value: 1000000, opts: locale.DecimalOptions{GroupingSeparator: optional.Some(" ")}, expected: "1 000 000"},
		{name: "same grouping separator", value: 1000000, opts: locale.DecimalOptions{GroupingSeparator: optional.Some(",")}, expected: "1,000,000"},
		{name: "minimum fraction digits", value: 10, opts: locale.DecimalOptions{MinFractionDigits: 2, MaxFractionDigits: optional.Some(2)}, expected: "10.00"},
		{name: "no fraction digits", value: 10000.4, opts: locale.DecimalOptions{MaxFractionDigits: optional.Some(0)}, expected: "10,000"},
		{name: "max below min is raised", value: 1.5, opts: locale.DecimalOptions{MinFractionDigits: 2, MaxFractionDigits: optional.Some(0)}, expected: "1.50"},
		{name: "german locale", value: 1234567.5, opts: locale.DecimalOptions{Locale: "de-DE"}, expected: "1.234.567,5"},
		{name: "max int64 is exact", value: int64(math.MaxInt64), expected: "9,223,372,036,854,775,807"},
		{name: "min int64 is exact", value: int64(math.MinInt64), expected: "-9,223,372,036,854,775,808"},
		{name: "max uint64 is exact", value: uint64(math.MaxUint64), expected: "18,446,744,073,709,551,615"},
		{name: "above float precision", value: int64(9007199254740993), expected: "9,007,199,254,740,993"},
		{name: "named integer type", value: cents(150000), expected: "150,000"},
		{name: "small integer kinds", value: uint8(255), expected: "255"},
		{name: "integer with fraction digits", value: 10, opts: locale.DecimalOptions{MinFractionDigits: 2, MaxFractionDigits: optional.Some(2)}, expected: "10.00"},
		{name: "german locale with custom separator", value: 1234567.5, opts: locale.DecimalOptions{Locale: "de-DE", GroupingSeparator: optional.Some(",")}, expected: "1,234,567,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.FormatDecimal(tt.value, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatDecimalErrors(t *testing.T) {
	t.Parallel()

	svc := locale.Fixed{}

	_, err := svc.FormatDecimal(1, locale.DecimalOptions{Locale: "not a locale!"})
	assert.ErrorIs(t, err, locale.ErrInvalidLocale)

	_, err = svc.FormatDecimal(math.NaN(), locale.DecimalOptions{})
	assert.ErrorIs(t, err, locale.ErrNotFinite)

	_, err = svc.FormatDecimal(math.Inf(-1), locale.DecimalOptions{})
	assert.ErrorIs(t, err, locale.ErrNotFinite)

	_, err = svc.FormatDecimal(float32(math.Inf(1)), locale.DecimalOptions{})
	assert.ErrorIs(t, err, locale.ErrNotFinite)

	_, err = svc.FormatDecimal("1000", locale.DecimalOptions{})
	assert.ErrorIs(t, err, locale.ErrUnsupportedNumber)

	_, err = svc.FormatDecimal(nil, locale.DecimalOptions{})
	assert.ErrorIs(t, err, locale.ErrUnsupportedNumber)

	_, err = locale.Fixed{Locale: "??"}.FormatDecimal(1, locale.DecimalOptions{})
	assert.ErrorIs(t, err, locale.ErrInvalidLocale)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		host, err := locale.New()
		require.NoError(t, err)
		assert.Equal(t, "en-US", host.Tag().String())
		assert.Equal(t, time.Local, host.Location())
	})

	t.Run("custom clock and zone", func(t *testing.T) {
		t.Parallel()
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		host, err := locale.New(
			locale.WithLocale("fr-FR"),
			locale.WithTimezone("UTC"),
			locale.WithNow(func() time.Time { return at }),
		)
		require.NoError(t, err)
		assert.Equal(t, at, host.Now())
		assert.Equal(t, "UTC", host.Location().String())
		assert.Equal(t, "fr-FR", host.Tag().String())
	})

	t.Run("empty locale keeps default", func(t *testing.T) {
		t.Parallel()
		host, err := locale.New(locale.WithLocale(""))
		require.NoError(t, err)
		assert.Equal(t, "en-US", host.Tag().String())
	})

	t.Run("invalid locale", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New(locale.WithLocale("not a locale!"))
		assert.ErrorIs(t, err, locale.ErrInvalidLocale)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New(locale.WithTimezone("Mars/Olympus_Mons"))
		assert.ErrorIs(t, err, locale.ErrInvalidTimezone)
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	host := locale.Default()
	got, err := host.FormatDecimal(1000, locale.DecimalOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1,000", got)
	assert.WithinDuration(t, time.Now(), host.Now(), time.Minute)
}

func TestFixedDefaults(t *testing.T) {
	t.Parallel()

	var f locale.Fixed
	assert.Equal(t, time.UTC, f.Location())
	assert.Equal(t, int64(0), f.Now().Unix())
}
