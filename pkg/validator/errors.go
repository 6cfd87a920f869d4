package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidEmail is the message-level error for addresses that do not match the email grammar.
	ErrInvalidEmail = errors.New("must be a valid email address")

	// ErrEmailDomainNotAllowed is the message-level error for addresses outside the domain allow-list.
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")
)
