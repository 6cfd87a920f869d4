// Package optional provides a generic present-or-absent wrapper together with
// a small set of combinators for working with it.
//
// Absence is a first-class state of Option[T]: a None[int]() is never
// confused with Some(0). The zero value of Option[T] is None.
//
//	name := optional.Some("gopher")
//	greeting := optional.Map(name, func(s string) string { return "hi " + s })
//	greeting.OrElse("hi stranger") // "hi gopher"
//
// # Combinators
//
//   - IsSome / IsNone report presence.
//   - Then runs a side effect only when a value is present.
//   - Map and Apply transform the value; Apply also takes an optional function.
//   - OrElse, OrZero and OrThrow unwrap the value.
//   - Matching filters the value with a predicate.
//   - Pure wraps a plain value, Zip pairs two options.
//
// # Error handling
//
// OrThrow is the only helper that reports an error. Its error builder is
// called lazily, only when the option is empty, so building an expensive or
// side-effecting error costs nothing on the success path.
//
// Option values are immutable and safe to share between goroutines as long as
// T itself is.
package optional
