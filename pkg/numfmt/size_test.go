package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/valuekit/pkg/numfmt"
)

func TestHumanReadableSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero", bytes: 0, expected: "0 bytes"},
		{name: "just below a kilobyte", bytes: 1023, expected: "1023 bytes"},
		{name: "one kilobyte", bytes: 1024, expected: "1.00 kb"},
		{name: "two kilobytes", bytes: 2048, expected: "2.00 kb"},
		{name: "fractional kilobytes", bytes: 1536, expected: "1.50 kb"},
		{name: "just below a megabyte", bytes: 1024*1024 - 1, expected: "1024.00 kb"},
		{name: "one megabyte", bytes: 1024 * 1024, expected: "1.00 mb"},
		{name: "fractional megabytes", bytes: 5 * 1024 * 1024 / 2, expected: "2.50 mb"},
		{name: "one gigabyte", bytes: 1024 * 1024 * 1024, expected: "1.00 gb"},
		{name: "gigabytes is the largest unit", bytes: 5 * 1024 * 1024 * 1024 * 1024, expected: "5120.00 gb"},
		{name: "negative", bytes: -5, expected: "-5 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, numfmt.HumanReadableSize(tt.bytes))
		})
	}
}

func TestUnitConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, numfmt.Kilobytes(1536))
	assert.Equal(t, 1.0, numfmt.Megabytes(1024*1024))
	assert.Equal(t, 0.5, numfmt.Gigabytes(512*1024*1024))
	assert.Equal(t, numfmt.Kilobytes(3*1024*1024)/1024, numfmt.Megabytes(3*1024*1024))
	assert.Equal(t, 1.5, numfmt.MillisToSeconds(1500))
}

func BenchmarkHumanReadableSize(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_ = numfmt.HumanReadableSize(5 * 1024 * 1024)
	}
}
