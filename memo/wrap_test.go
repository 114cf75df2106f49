package memo_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/on-the-ground/mutcache/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapI1O1(t *testing.T) {
	count := 0
	fn, cacheInfo := memo.WrapI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
	assert.Equal(t, memo.CacheInfo{Hits: 1, Misses: 1, CurrSize: 1}, cacheInfo())
}

func TestWrapI2O1(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI2O1(func(a, b int) int {
		count++
		return a + b
	})

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)
}

func TestWrapI3O1(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestWrapI4O1(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI4O1(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	})

	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestWrapI1O1Err(t *testing.T) {
	errOdd := errors.New("odd")
	count := 0
	fn, cacheInfo := memo.WrapI1O1Err(func(i int) (int, error) {
		count++
		if i%2 != 0 {
			return 0, errOdd
		}
		return i / 2, nil
	})

	v, err := fn(4)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, _ = fn(4)

	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)
	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)

	assert.Equal(t, 3, count)
	assert.Equal(t, memo.CacheInfo{Hits: 1, Misses: 3, CurrSize: 1}, cacheInfo())
}

func TestWrapI2O1Err(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI2O1Err(func(a, b int) (int, error) {
		count++
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})

	v, err := fn(6, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, _ = fn(6, 3)
	assert.Equal(t, 1, count)

	_, err = fn(1, 0)
	assert.EqualError(t, err, "division by zero")
}

func TestWrapI3O1Err(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI3O1Err(func(a, b, c string) (string, error) {
		count++
		return a + b + c, nil
	})

	v, err := fn("x", "y", "z")
	require.NoError(t, err)
	assert.Equal(t, "xyz", v)
	_, _ = fn("x", "y", "z")
	assert.Equal(t, 1, count)
}

func TestWrapI4O1Err(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI4O1Err(func(a, b, c, d int) (int, error) {
		count++
		return a * b * c * d, nil
	})

	v, err := fn(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, v)
	_, _ = fn(1, 2, 3, 4)
	assert.Equal(t, 1, count)
}

func TestWrapKw(t *testing.T) {
	count := 0
	g, cacheInfo := memo.WrapKw(func(args []any, kwargs memo.Kwargs) string {
		count++
		flag, _ := kwargs.Lookup("flag")
		return fmt.Sprintf("%v/%v", args[0], flag)
	}, memo.WithName("g"))

	assert.Equal(t, "5/true", g([]any{5}, memo.Kw("flag", true)))
	assert.Equal(t, "5/true", g([]any{5}, memo.Kw("flag", false)))
	assert.Equal(t, "5/<nil>", g([]any{5}))
	assert.Equal(t, 2, count)
	assert.Equal(t, memo.CacheInfo{Hits: 1, Misses: 2, CurrSize: 2}, cacheInfo())
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func TestWrapWithNonComparableArgument(t *testing.T) {
	count := 0
	fn, _ := memo.WrapI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	})

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

func TestWrapWithStrictKeysPanics(t *testing.T) {
	fn, cacheInfo := memo.WrapI1O1(func(n NonComparable) int {
		return len(n.Field)
	}, memo.WithStrictKeys())

	assert.Panics(t, func() {
		_ = fn(NonComparable{Field: []int{1}})
	})
	assert.Equal(t, memo.CacheInfo{Misses: 1}, cacheInfo())
}

func TestWrapWithNilInterfaceArgument(t *testing.T) {
	fn, _ := memo.WrapI1O1(func(e error) string {
		if e == nil {
			return "ok"
		}
		return e.Error()
	})

	assert.Equal(t, "ok", fn(nil))
	assert.Equal(t, "bad", fn(errors.New("bad")))
}

func TestWrapRecursive(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib, cacheInfo := memo.WrapI1O1(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, 6765, fib(20))
	assert.Equal(t, 21, calls)
	assert.Equal(t, 21, cacheInfo().CurrSize)
}

func TestWrapWithNilPointerArgument(t *testing.T) {
	count := 0
	fn, cacheInfo := memo.WrapI1O1(func(ts *time.Time) bool {
		count++
		return ts == nil
	})

	assert.True(t, fn(nil))
	assert.True(t, fn(nil))
	assert.Equal(t, 1, count)
	assert.Equal(t, memo.CacheInfo{Hits: 1, Misses: 1, CurrSize: 1}, cacheInfo())
}
