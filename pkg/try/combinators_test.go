package try

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		res := Map(Of(5), double)
		assert.Equal(t, 10, res.MustGet())
	})

	t.Run("changes type", func(t *testing.T) {
		res := Map(Of(5), func(v int) (string, error) { return strconv.Itoa(v), nil })
		assert.Equal(t, "5", res.MustGet())
	})

	t.Run("callback error", func(t *testing.T) {
		res := Map(Of(5), func(int) (int, error) { return 0, errBoom })
		assert.ErrorIs(t, res.Err(), errBoom)
	})

	t.Run("callback panic", func(t *testing.T) {
		res := Map(Of(5), func(int) (int, error) { panic(errBoom) })
		var pe *PanicError
		require.ErrorAs(t, res.Err(), &pe)
		assert.ErrorIs(t, res.Err(), errBoom)
	})

	t.Run("failure short-circuits", func(t *testing.T) {
		failed := OfFailure[int](errBoom)
		called := false
		res := Map(failed, func(v int) (string, error) {
			called = true
			return "", nil
		})
		assert.False(t, called)
		assert.Equal(t, failed.Id(), res.Id())
		assert.Equal(t, failed.CreatedAt(), res.CreatedAt())
		assert.Same(t, errBoom, res.Err())
	})
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	half := func(v int) Try[int] {
		if v%2 != 0 {
			return OfFailure[int](errors.New("odd"))
		}
		return Of(v / 2)
	}

	assert.Equal(t, 2, FlatMap(Of(4), half).MustGet())
	assert.EqualError(t, FlatMap(Of(3), half).Err(), "odd")

	inner := OfFailure[int](errBoom)
	assert.Equal(t, inner.Id(), FlatMap(Of(1), func(int) Try[int] { return inner }).Id())

	panicked := FlatMap(Of(1), func(int) Try[int] { panic("flat") })
	var pe *PanicError
	assert.ErrorAs(t, panicked.Err(), &pe)

	failed := OfFailure[int](errBoom)
	assert.Equal(t, failed.Id(), FlatMap(failed, half).Id())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	five := Of(5)

	kept := five.Filter(func(v int) bool { return v > 0 })
	assert.Equal(t, five.Id(), kept.Id())
	assert.Equal(t, 5, kept.MustGet())

	dropped := five.Filter(func(v int) bool { return v > 10 })
	require.True(t, dropped.IsFailure())
	assert.ErrorIs(t, dropped.Err(), ErrPredicateNotSatisfied)

	panicked := five.Filter(func(int) bool { panic(errBoom) })
	assert.ErrorIs(t, panicked.Err(), errBoom)

	failing := five.FilterErr(func(int) (bool, error) { return true, errBoom })
	assert.ErrorIs(t, failing.Err(), errBoom)

	failed := OfFailure[int](errBoom)
	assert.Equal(t, failed.Id(), failed.Filter(func(int) bool { return false }).Id())
}

func TestForeach(t *testing.T) {
	t.Parallel()

	seen := 0
	five := Of(5)
	res := five.Foreach(func(v int) error {
		seen = v
		return nil
	})
	assert.Equal(t, 5, seen)
	assert.Equal(t, five.Id(), res.Id())

	res = five.Foreach(func(int) error { return errBoom })
	assert.ErrorIs(t, res.Err(), errBoom)

	assert.Panics(t, func() {
		five.Foreach(func(int) error { panic("side effect") })
	})

	called := false
	failed := OfFailure[int](errBoom)
	res = failed.Foreach(func(int) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.Equal(t, failed.Id(), res.Id())
}

func TestOnException(t *testing.T) {
	t.Parallel()

	var seen error
	failed := OfFailure[int](errBoom)
	res := failed.OnException(func(err error) error {
		seen = err
		return nil
	})
	assert.Same(t, errBoom, seen)
	assert.Equal(t, failed.Id(), res.Id())

	errLog := errors.New("log")
	res = failed.OnException(func(error) error { return errLog })
	assert.ErrorIs(t, res.Err(), errLog)
	assert.NotEqual(t, failed.Id(), res.Id())

	assert.Panics(t, func() {
		failed.OnException(func(error) error { panic("side effect") })
	})

	five := Of(5)
	called := false
	res = five.OnException(func(error) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.Equal(t, five.Id(), res.Id())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	seven := func(error) (int, error) { return 7, nil }

	assert.Equal(t, 7, OfFailure[int](errBoom).Recover(seven).MustGet())

	five := Of(5)
	assert.Equal(t, five.Id(), five.Recover(seven).Id())
	assert.Equal(t, 5, five.Recover(seven).MustGet())

	errAgain := errors.New("again")
	res := OfFailure[int](errBoom).Recover(func(error) (int, error) { return 0, errAgain })
	assert.ErrorIs(t, res.Err(), errAgain)

	res = OfFailure[int](errBoom).Recover(func(error) (int, error) { panic("recover") })
	var pe *PanicError
	assert.ErrorAs(t, res.Err(), &pe)
}

func TestRecoverWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, OfFailure[int](errBoom).RecoverWith(func(err error) Try[int] {
		return Of(1)
	}).MustGet())

	five := Of(5)
	assert.Equal(t, five.Id(), five.RecoverWith(func(error) Try[int] { return Of(1) }).Id())

	res := OfFailure[int](errBoom).RecoverWith(func(error) Try[int] { panic("with") })
	var pe *PanicError
	assert.ErrorAs(t, res.Err(), &pe)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	five := Of(5)
	failed := OfFailure[int](errBoom)

	assert.Equal(t, five.Id(), five.OrElse(Of(1)).Id())
	assert.Equal(t, 1, failed.OrElse(Of(1)).MustGet())

	assert.Equal(t, five.Id(), five.OrElse(five).Id())
	assert.Equal(t, failed.Id(), failed.OrElse(failed).Id())

	assert.Equal(t, 2, failed.OrElseGet(func() Try[int] { return Of(2) }).MustGet())
	assert.Equal(t, five.Id(), five.OrElseGet(func() Try[int] { panic("unused") }).Id())

	res := failed.OrElseGet(func() Try[int] { panic(errBoom) })
	assert.ErrorIs(t, res.Err(), errBoom)
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Of(5).GetOrElse(1))
	assert.Equal(t, 1, OfFailure[int](errBoom).GetOrElse(1))

	assert.Equal(t, 5, Of(5).GetOrElseGet(func() int { return 1 }))
	assert.Equal(t, 1, OfFailure[int](errBoom).GetOrElseGet(func() int { return 1 }))
	assert.Panics(t, func() {
		OfFailure[int](errBoom).GetOrElseGet(func() int { panic("default") })
	})
}

func TestFailed(t *testing.T) {
	t.Parallel()

	res := Failed(Of(5))
	assert.ErrorIs(t, res.Err(), ErrNotFailed)

	inverted := Failed(OfFailure[int](errBoom))
	require.True(t, inverted.IsSuccess())
	assert.Same(t, errBoom, inverted.MustGet())
}

func TestTransform(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) Try[string] { return Of(strconv.Itoa(v)) }
	onFailure := func(err error) Try[string] { return Of("failed: " + err.Error()) }

	assert.Equal(t, "5", Transform(Of(5), onSuccess, onFailure).MustGet())
	assert.Equal(t, "failed: boom", Transform(OfFailure[int](errBoom), onSuccess, onFailure).MustGet())

	res := Transform(Of(5), func(int) Try[string] { panic(errBoom) }, onFailure)
	assert.ErrorIs(t, res.Err(), errBoom)
}

func TestFoldAndMatch(t *testing.T) {
	t.Parallel()

	describe := func(r Try[int]) string {
		return Fold(r,
			func(v int) string { return "value " + strconv.Itoa(v) },
			func(err error) string { return "error " + err.Error() })
	}
	assert.Equal(t, "value 5", describe(Of(5)))
	assert.Equal(t, "error boom", describe(OfFailure[int](errBoom)))

	var got []string
	Of(1).Match(func(int) { got = append(got, "success") }, func(error) { got = append(got, "failure") })
	OfFailure[int](errBoom).Match(func(int) { got = append(got, "success") }, func(error) { got = append(got, "failure") })
	assert.Equal(t, []string{"success", "failure"}, got)
}

func TestSequenceAndJoin(t *testing.T) {
	t.Parallel()

	errOther := errors.New("other")

	all := []Try[int]{Of(1), Of(2), Of(3)}
	assert.Equal(t, []int{1, 2, 3}, Sequence(all).MustGet())
	assert.Equal(t, []int{1, 2, 3}, Join(all...).MustGet())

	first := OfFailure[int](errBoom)
	mixed := []Try[int]{Of(1), first, OfFailure[int](errOther)}

	seq := Sequence(mixed)
	assert.Equal(t, first.Id(), seq.Id())
	assert.Same(t, errBoom, seq.Err())

	joined := Join(mixed...)
	assert.ErrorIs(t, joined.Err(), errBoom)
	assert.ErrorIs(t, joined.Err(), errOther)
	assert.Len(t, GetErrors(joined.Err()), 2)

	assert.Same(t, errBoom, Join(Of(1), first).Err())
	assert.Empty(t, Sequence[int](nil).MustGet())
}

func TestChainedPipeline(t *testing.T) {
	t.Parallel()

	parse := func(s string) Try[int] {
		return To(func() (int, error) { return strconv.Atoi(s) })
	}

	ok := Map(parse("21").Filter(func(v int) bool { return v > 0 }), double)
	assert.Equal(t, 42, ok.MustGet())

	bad := Map(parse("x").Filter(func(v int) bool { return v > 0 }), double).
		Recover(func(error) (int, error) { return -1, nil })
	assert.Equal(t, -1, bad.MustGet())

	var numErr *strconv.NumError
	assert.ErrorAs(t, parse("x").Err(), &numErr)
}
