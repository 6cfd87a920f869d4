package validator

import (
	"regexp"
	"strings"
)

// emailRegex is the only email grammar accepted by this package. It is
// anchored so the whole input has to match.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// IsValidEmail reports whether s is an email address and, when domains is not
// empty, whether it contains "@"+d for at least one d in domains.
//
// Domain matching is substring containment on the whole address, so "gmail"
// allows "x@gmail.com" and "x@gmail.co.uk" alike. Matching is case-sensitive.
func IsValidEmail(s string, domains ...string) bool {
	if !MatchesEmailGrammar(s) {
		return false
	}
	return HasAllowedDomain(s, domains...)
}

// MatchesEmailGrammar reports whether s as a whole matches the email grammar.
func MatchesEmailGrammar(s string) bool {
	return emailRegex.MatchString(s)
}

// HasAllowedDomain reports whether s contains "@"+d for some d in domains.
// An empty allow-list allows everything.
func HasAllowedDomain(s string, domains ...string) bool {
	if len(domains) == 0 {
		return true
	}
	for _, d := range domains {
		if strings.Contains(s, "@"+d) {
			return true
		}
	}
	return false
}

// ValidEmail is the Rule form of IsValidEmail. An address that matches the
// grammar but falls outside domains is reported under
// "validation.email_domain", anything else under "validation.email".
func ValidEmail(field, value string, domains ...string) Rule {
	rule := Rule{
		Check: func() bool {
			return IsValidEmail(value, domains...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrInvalidEmail.Error(),
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
	if MatchesEmailGrammar(value) && !HasAllowedDomain(value, domains...) {
		rule.Error = domainError(field, domains)
	}
	return rule
}

// AllowedEmailDomain checks only the domain allow-list part of IsValidEmail.
// Combine it with ValidEmail(field, value) to report grammar and domain
// failures under separate translation keys.
func AllowedEmailDomain(field, value string, domains ...string) Rule {
	return Rule{
		Check: func() bool {
			return HasAllowedDomain(value, domains...)
		},
		Error: domainError(field, domains),
	}
}

func domainError(field string, domains []string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        ErrEmailDomainNotAllowed.Error(),
		TranslationKey: "validation.email_domain",
		TranslationValues: map[string]any{
			"field":   field,
			"domains": strings.Join(domains, ", "),
		},
	}
}
