package try

import (
	"errors"
	"fmt"
)

var (
	// ErrPredicateNotSatisfied is wrapped by the Failure Filter produces
	// when the predicate does not hold.
	ErrPredicateNotSatisfied = errors.New("try: predicate not satisfied")

	// ErrNotFailed is held by the Failure Failed returns for a Success.
	ErrNotFailed = errors.New("try: operation did not fail")

	// ErrNilFailure is the panic value of OfFailure(nil).
	ErrNilFailure = errors.New("try: failure requires a non-nil error")
)

// PanicError is the error a recovered panic is turned into.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("try: recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is an error, so that errors.Is
// and errors.As see through the panic.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
