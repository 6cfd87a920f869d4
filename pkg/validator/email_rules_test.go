package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/validator"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		domains  []string
		expected bool
	}{
		{name: "empty", email: "", expected: false},
		{name: "no at sign", email: "aaa", expected: false},
		{name: "no local part separator", email: "aaa.com", expected: false},
		{name: "empty local part", email: "@aaa.com", expected: false},
		{name: "empty domain", email: "aaa.com@", expected: false},
		{name: "short top level domain", email: "aaa.com@.a", expected: false},
		{name: "leading space", email: " hello@example.io", expected: false},
		{name: "trailing garbage", email: "hello@example.io extra", expected: false},
		{name: "numeric top level domain", email: "hello@example.123", expected: false},
		{name: "plain address", email: "hello@example.io", expected: true},
		{name: "plain address with empty allow-list", email: "hello@example.io", domains: []string{}, expected: true},
		{name: "plus and percent in local part", email: "a.b+c%d@example.co.uk", expected: true},
		{name: "exact domain allowed", email: "hello@gmail.com", domains: []string{"gmail.com"}, expected: true},
		{name: "domain prefix allowed", email: "hello@gmail.com", domains: []string{"gmail"}, expected: true},
		{name: "second domain allowed", email: "hello@yahoo.com", domains: []string{"gmail.com", "yahoo.com", "contoso.com"}, expected: true},
		{name: "domain not allowed", email: "hello@example.io", domains: []string{"gmail.com"}, expected: false},
		{name: "similar domain not allowed", email: "hello@yahoo.lol", domains: []string{"gmail.com", "yahoo.com", "contoso.com"}, expected: false},
		{name: "short list rejects", email: "hello@yahoo.lol", domains: []string{"gmail", "yahoo.com"}, expected: false},
		{name: "allow-list is case-sensitive", email: "hello@Gmail.com", domains: []string{"gmail"}, expected: false},
		{name: "invalid grammar ignores allow-list", email: "hello@gmail", domains: []string{"gmail"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validator.IsValidEmail(tt.email, tt.domains...))
		})
	}
}

func TestIsValidEmailIsDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"hello@gmail.com", "bad", "x@yahoo.lol"}
	for _, in := range inputs {
		first := validator.IsValidEmail(in, "gmail")
		for range 10 {
			assert.Equal(t, first, validator.IsValidEmail(in, "gmail"))
		}
	}
}

func TestValidEmailRule(t *testing.T) {
	t.Parallel()

	t.Run("passes for a valid address", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", "hello@example.io")))
	})

	t.Run("reports grammar failures", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.ValidEmail("email", "nope"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.email", verrs[0].TranslationKey)
		assert.Equal(t, "email", verrs[0].TranslationValues["field"])
	})

	t.Run("reports domain rejection under the domain key", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.ValidEmail("email", "hello@example.io", "gmail.com"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.email_domain", verrs[0].TranslationKey)
		assert.Equal(t, validator.ErrEmailDomainNotAllowed.Error(), verrs[0].Message)
		assert.Equal(t, "gmail.com", verrs[0].TranslationValues["domains"])
		assert.Equal(t, "email", verrs[0].TranslationValues["field"])
	})

	t.Run("grammar failure wins over domain rejection", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.ValidEmail("email", "nope@", "gmail.com"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.email", verrs[0].TranslationKey)
		assert.Equal(t, validator.ErrInvalidEmail.Error(), verrs[0].Message)
	})

	t.Run("allowed domain passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", "hello@gmail.com", "gmail")))
	})

	t.Run("reports domain failures separately", func(t *testing.T) {
		t.Parallel()
		email := "hello@example.io"
		err := validator.Apply(
			validator.ValidEmail("email", email),
			validator.AllowedEmailDomain("email", email, "gmail.com", "yahoo.com"),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.email_domain", verrs[0].TranslationKey)
		assert.Equal(t, "gmail.com, yahoo.com", verrs[0].TranslationValues["domains"])
	})
}

func BenchmarkIsValidEmail(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		_ = validator.IsValidEmail("john.doe@example.com", "example.com")
	}
}
