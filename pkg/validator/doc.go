// Package validator checks user input against a small, fixed set of rules.
//
// The central check is IsValidEmail, which matches an address against a single
// email grammar and, optionally, a domain allow-list:
//
//	validator.IsValidEmail("hello@example.io")                  // true
//	validator.IsValidEmail("hello@gmail.com", "gmail", "yahoo") // true
//	validator.IsValidEmail("hello@lol.io", "gmail", "yahoo")    // false
//
// The allow-list is permissive: an address passes when it
// contains "@"+d for any listed d, so "gmail" and "gmail.com" both accept
// "x@gmail.com".
//
// # Rules
//
// Every check is also available as a Rule, a lazy Check func paired with a
// translation-friendly ValidationError. Apply evaluates rules and aggregates
// the failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.AllowedEmailDomain("email", email, "example.com"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("email"), verrs.Fields(), ...
//	}
//
// # Error Handling
//
// IsValidEmail never fails; it returns false. ValidationErrors matches
// ErrValidationFailed with errors.Is.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
