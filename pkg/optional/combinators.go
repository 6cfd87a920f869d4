package optional

// Pair is the product of two present values produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map transforms the value with f when present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some || f == nil {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap transforms the value with a function that may itself produce nothing.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some || f == nil {
		return None[U]()
	}
	return f(o.value)
}

// Apply maps o through the optional function f. The result is absent when
// either f or o is absent.
func Apply[T, U any](o Option[T], f Option[func(T) U]) Option[U] {
	fn, ok := f.Get()
	if !ok {
		return None[U]()
	}
	return Map(o, fn)
}

// Zip pairs two options. The result is present only when both inputs are.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if !a.some || !b.some {
		return None[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: a.value, Second: b.value})
}

// IsNoneOrEmpty reports whether a slice option is absent or holds an empty slice.
func IsNoneOrEmpty[S ~[]E, E any](o Option[S]) bool {
	return !o.some || len(o.value) == 0
}

// IsNoneOrBlank reports whether a string option is absent or holds "".
func IsNoneOrBlank[S ~string](o Option[S]) bool {
	return !o.some || len(o.value) == 0
}
