package optional_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/optional"
)

func TestPresence(t *testing.T) {
	t.Parallel()

	t.Run("some is present", func(t *testing.T) {
		t.Parallel()
		o := optional.Some(0)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNone())
	})

	t.Run("none is absent", func(t *testing.T) {
		t.Parallel()
		o := optional.None[int]()
		assert.False(t, o.IsSome())
		assert.True(t, o.IsNone())
	})

	t.Run("zero value is none", func(t *testing.T) {
		t.Parallel()
		var o optional.Option[string]
		assert.True(t, o.IsNone())
	})

	t.Run("zero value payload is not absence", func(t *testing.T) {
		t.Parallel()
		v, ok := optional.Some("").Get()
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})
}

func TestOf(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, optional.Some(1), optional.Of(v, ok))

	v, ok = m["b"]
	assert.True(t, optional.Of(v, ok).IsNone())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	n := 42
	assert.Equal(t, 42, optional.FromPtr(&n).OrZero())
	assert.True(t, optional.FromPtr[int](nil).IsNone())

	p := optional.Some(7).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
	assert.Nil(t, optional.None[int]().Ptr())
}

func TestThen(t *testing.T) {
	t.Parallel()

	t.Run("runs effect when present", func(t *testing.T) {
		t.Parallel()
		var got []int
		optional.Some(3).Then(func(v int) { got = append(got, v) })
		assert.Equal(t, []int{3}, got)
	})

	t.Run("skips effect when absent", func(t *testing.T) {
		t.Parallel()
		called := false
		optional.None[int]().Then(func(int) { called = true })
		assert.False(t, called)
	})

	t.Run("nil effect is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { optional.Some(1).Then(nil) })
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	double := optional.Some(func(v int) string { return strconv.Itoa(v * 2) })
	noFn := optional.None[func(int) string]()

	tests := []struct {
		name     string
		value    optional.Option[int]
		fn       optional.Option[func(int) string]
		expected optional.Option[string]
	}{
		{name: "both present", value: optional.Some(21), fn: double, expected: optional.Some("42")},
		{name: "value absent", value: optional.None[int](), fn: double, expected: optional.None[string]()},
		{name: "function absent", value: optional.Some(21), fn: noFn, expected: optional.None[string]()},
		{name: "both absent", value: optional.None[int](), fn: noFn, expected: optional.None[string]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, optional.Apply(tt.value, tt.fn))
		})
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, optional.Some(5).OrElse(9))
	assert.Equal(t, 9, optional.None[int]().OrElse(9))
	assert.Equal(t, "", optional.None[string]().OrZero())
	assert.Equal(t, 1.5, optional.Some(1.5).OrZero())
}

func TestOrThrow(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("missing")

	t.Run("present value skips the builder", func(t *testing.T) {
		t.Parallel()
		calls := 0
		v, err := optional.Some("ok").OrThrow(func() error {
			calls++
			return errMissing
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
		assert.Zero(t, calls)
	})

	t.Run("absent value builds the error once", func(t *testing.T) {
		t.Parallel()
		calls := 0
		v, err := optional.None[string]().OrThrow(func() error {
			calls++
			return errMissing
		})
		assert.ErrorIs(t, err, errMissing)
		assert.Equal(t, "", v)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil builder falls back to ErrNone", func(t *testing.T) {
		t.Parallel()
		_, err := optional.None[int]().OrThrow(nil)
		assert.ErrorIs(t, err, optional.ErrNone)
	})

	t.Run("builder returning nil still fails", func(t *testing.T) {
		t.Parallel()
		_, err := optional.None[int]().OrThrow(func() error { return nil })
		assert.ErrorIs(t, err, optional.ErrNone)
	})
}

func TestMatching(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, optional.Some(4), optional.Some(4).Matching(even))
	assert.True(t, optional.Some(3).Matching(even).IsNone())
	assert.True(t, optional.None[int]().Matching(even).IsNone())
	assert.True(t, optional.Some(4).Matching(nil).IsNone())
}

func TestPure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some("x"), optional.Pure("x"))
}

func TestZip(t *testing.T) {
	t.Parallel()

	t.Run("both present", func(t *testing.T) {
		t.Parallel()
		p, ok := optional.Zip(optional.Some(1), optional.Some("one")).Get()
		require.True(t, ok)
		assert.Equal(t, 1, p.First)
		assert.Equal(t, "one", p.Second)
	})

	t.Run("first absent", func(t *testing.T) {
		t.Parallel()
		assert.True(t, optional.Zip(optional.None[int](), optional.Some("one")).IsNone())
	})

	t.Run("second absent", func(t *testing.T) {
		t.Parallel()
		assert.True(t, optional.Zip(optional.Some(1), optional.None[string]()).IsNone())
	})
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) optional.Option[int] {
		n, err := strconv.Atoi(s)
		return optional.Of(n, err == nil)
	}

	assert.Equal(t, optional.Some(3), optional.Map(optional.Some("abc"), func(s string) int { return len(s) }))
	assert.True(t, optional.Map(optional.None[string](), func(s string) int { return len(s) }).IsNone())
	assert.Equal(t, optional.Some(12), optional.FlatMap(optional.Some("12"), parse))
	assert.True(t, optional.FlatMap(optional.Some("x"), parse).IsNone())
}

func TestEmptiness(t *testing.T) {
	t.Parallel()

	assert.True(t, optional.IsNoneOrEmpty(optional.None[[]int]()))
	assert.True(t, optional.IsNoneOrEmpty(optional.Some([]int{})))
	assert.False(t, optional.IsNoneOrEmpty(optional.Some([]int{1})))

	assert.True(t, optional.IsNoneOrBlank(optional.None[string]()))
	assert.True(t, optional.IsNoneOrBlank(optional.Some("")))
	assert.False(t, optional.IsNoneOrBlank(optional.Some("a")))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(5)", optional.Some(5).String())
	assert.Equal(t, "None", optional.None[int]().String())
}
