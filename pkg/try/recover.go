package try

import (
	"runtime/debug"
)

func newPanicError(r any) *PanicError {
	return &PanicError{Value: r, Stack: debug.Stack()}
}

// call runs f and converts a panic into a *PanicError. A typed nil error
// returned by f is reported as nil.
func call[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, newPanicError(r)
		}
	}()
	v, err = f()
	if IsNil(err) {
		err = nil
	}
	return v, err
}

// guard runs a Try producing f and converts a panic into a Failure.
func guard[T any](f func() Try[T]) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = failure[T](newPanicError(r))
		}
	}()
	return f()
}

func runFinally(actions []func() error) {
	for _, action := range actions {
		if action == nil {
			continue
		}
		if _, err := call(func() (Unit, error) { return Unit{}, action() }); err != nil {
			Logger().Debug("try: cleanup failed", "err", err)
		}
	}
}
