package try

import (
	"fmt"
)

// Map applies f to the value of a Success. An error returned by f, or a
// panic inside it, becomes a new Failure. A Failure is passed through with
// its identity and error untouched.
func Map[T, U any](t Try[T], f func(T) (U, error)) Try[U] {
	if t.err != nil {
		return failureFrom[T, U](t)
	}

	v, err := call(func() (U, error) { return f(t.value) })
	if err != nil {
		return failure[U](err)
	}
	return success(v)
}

// FlatMap returns the Try produced by f for the value of a Success.
func FlatMap[T, U any](t Try[T], f func(T) Try[U]) Try[U] {
	if t.err != nil {
		return failureFrom[T, U](t)
	}
	return guard(func() Try[U] { return f(t.value) })
}

// Transform applies onSuccess or onFailure depending on the variant and
// returns the Try it produces.
func Transform[T, U any](t Try[T], onSuccess func(T) Try[U], onFailure func(error) Try[U]) Try[U] {
	if t.err != nil {
		return guard(func() Try[U] { return onFailure(t.err) })
	}
	return guard(func() Try[U] { return onSuccess(t.value) })
}

// Failed inverts t: the error of a Failure becomes a Success value, and a
// Success becomes a Failure holding ErrNotFailed.
func Failed[T any](t Try[T]) Try[error] {
	if t.err != nil {
		return success(t.err)
	}
	return failure[error](ErrNotFailed)
}

// Fold reduces t to a plain value.
func Fold[T, U any](t Try[T], onSuccess func(T) U, onFailure func(error) U) U {
	if t.err != nil {
		return onFailure(t.err)
	}
	return onSuccess(t.value)
}

// Filter keeps a Success whose value satisfies p and turns any other
// Success into a Failure wrapping ErrPredicateNotSatisfied.
func (t Try[T]) Filter(p func(T) bool) Try[T] {
	return t.FilterErr(func(v T) (bool, error) {
		return p(v), nil
	})
}

// FilterErr is Filter with a predicate that can fail.
func (t Try[T]) FilterErr(p func(T) (bool, error)) Try[T] {
	if t.err != nil {
		return t
	}

	ok, err := call(func() (bool, error) { return p(t.value) })
	if err != nil {
		return failure[T](err)
	}
	if !ok {
		return failure[T](fmt.Errorf("%w: %v", ErrPredicateNotSatisfied, t.value))
	}
	return t
}

// Foreach runs f on the value of a Success. An error returned by f yields
// a new Failure. A panic in f is not recovered.
func (t Try[T]) Foreach(f func(T) error) Try[T] {
	if t.err != nil {
		return t
	}
	if err := f(t.value); !IsNil(err) {
		return failure[T](err)
	}
	return t
}

// OnException runs f on the error of a Failure. An error returned by f
// yields a new Failure. A panic in f is not recovered.
func (t Try[T]) OnException(f func(error) error) Try[T] {
	if t.err == nil {
		return t
	}
	if err := f(t.err); !IsNil(err) {
		return failure[T](err)
	}
	return t
}

// Match calls exactly one of the handlers.
func (t Try[T]) Match(onSuccess func(T), onFailure func(error)) {
	if t.err != nil {
		onFailure(t.err)
		return
	}
	onSuccess(t.value)
}

// Recover maps the error of a Failure to a value.
func (t Try[T]) Recover(f func(error) (T, error)) Try[T] {
	if t.err == nil {
		return t
	}

	v, err := call(func() (T, error) { return f(t.err) })
	if err != nil {
		return failure[T](err)
	}
	return success(v)
}

// RecoverWith maps the error of a Failure to another Try.
func (t Try[T]) RecoverWith(f func(error) Try[T]) Try[T] {
	if t.err == nil {
		return t
	}
	return guard(func() Try[T] { return f(t.err) })
}

// OrElse returns t if it is a Success, fallback otherwise.
func (t Try[T]) OrElse(fallback Try[T]) Try[T] {
	if t.err == nil {
		return t
	}
	return fallback
}

// OrElseGet is OrElse with a lazily computed fallback.
func (t Try[T]) OrElseGet(fallback func() Try[T]) Try[T] {
	if t.err == nil {
		return t
	}
	return guard(fallback)
}

// GetOrElse returns the value of a Success, def otherwise.
func (t Try[T]) GetOrElse(def T) T {
	if t.err == nil {
		return t.value
	}
	return def
}

// GetOrElseGet returns the value of a Success or the result of def.
// A panic in def reaches the caller.
func (t Try[T]) GetOrElseGet(def func() T) T {
	if t.err == nil {
		return t.value
	}
	return def()
}

// Sequence collects the values of tries. The first Failure is returned
// as is.
func Sequence[T any](tries []Try[T]) Try[[]T] {
	values := make([]T, 0, len(tries))
	for _, t := range tries {
		if t.err != nil {
			return failureFrom[T, []T](t)
		}
		values = append(values, t.value)
	}
	return success(values)
}

// Join collects the values of tries like Sequence, but keeps going and
// joins the errors of all Failures into one.
func Join[T any](tries ...Try[T]) Try[[]T] {
	var errs []error
	values := make([]T, 0, len(tries))

	for _, t := range tries {
		if t.err != nil {
			errs = append(errs, GetErrors(t.err)...)
			continue
		}
		values = append(values, t.value)
	}

	if len(errs) > 0 {
		return failure[[]T](joinErrors(errs))
	}
	return success(values)
}
