package optional

import "fmt"

// Option holds either a value of type T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Pure wraps x as a present value. It is the unit of the combinator set and
// an alias of Some.
func Pure[T any](x T) Option[T] {
	return Some(x)
}

// Of builds an Option from the common "value, ok" pair.
func Of[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// OrElse returns the value when present and def otherwise.
// def is evaluated by the caller before the call.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// OrZero returns the value when present and the zero value of T otherwise.
func (o Option[T]) OrZero() T {
	return o.value
}

// OrThrow returns the value when present. When absent it calls build and
// returns the error it produced; build is never called on the success path.
func (o Option[T]) OrThrow(build func() error) (T, error) {
	if o.some {
		return o.value, nil
	}

	var zero T
	if build == nil {
		return zero, ErrNone
	}
	if err := build(); err != nil {
		return zero, err
	}
	return zero, ErrNone
}

// Then calls effect with the value when present and does nothing otherwise.
func (o Option[T]) Then(effect func(T)) {
	if o.some && effect != nil {
		effect(o.value)
	}
}

// Matching keeps the value only if it is present and satisfies pred.
func (o Option[T]) Matching(pred func(T) bool) Option[T] {
	if !o.some || pred == nil || !pred(o.value) {
		return None[T]()
	}
	return o
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
