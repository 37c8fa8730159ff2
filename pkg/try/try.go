package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the value carried by a successful Try built from a computation
// that produces nothing.
type Unit = struct{}

// Try holds either the value of a successful computation or the error it
// failed with. The variant is fixed at construction; combinators always
// hand back a Try and never modify the receiver.
//
// The zero Try is a Success holding the zero value of T.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
}

func success[T any](v T) Try[T] {
	return Try[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

func failure[T any](err error) Try[T] {
	return Try[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// failureFrom re-types a Failure while keeping its identity and error.
func failureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
	}
}

// To runs computation immediately and captures its outcome. A returned
// error or a panic produces a Failure. Every onFinally action runs after
// the computation settles, whatever the outcome; their own errors and
// panics are logged at debug level and never change the result.
func To[T any](computation func() (T, error), onFinally ...func() error) Try[T] {
	defer runFinally(onFinally)

	v, err := call(computation)
	if err != nil {
		return failure[T](err)
	}
	return success(v)
}

// ToVoid is To for computations that produce no value.
func ToVoid(computation func() error, onFinally ...func() error) Try[Unit] {
	defer runFinally(onFinally)

	_, err := call(func() (Unit, error) {
		return Unit{}, computation()
	})
	if err != nil {
		return failure[Unit](err)
	}
	return success(Unit{})
}

// Of wraps v as a Success. Nothing is evaluated, nil values included.
func Of[T any](v T) Try[T] {
	return success(v)
}

// OfFailure wraps err as a Failure. It panics with ErrNilFailure if err is
// nil.
func OfFailure[T any](err error) Try[T] {
	if IsNil(err) {
		panic(ErrNilFailure)
	}
	return failure[T](err)
}

// FromPair converts a Go (value, error) pair. A typed nil error counts as
// no error, as it does everywhere in this package.
func FromPair[T any](v T, err error) Try[T] {
	if !IsNil(err) {
		return failure[T](err)
	}
	return success(v)
}

// FromOutcome copies any Outcome into a Try. A failed Outcome without an
// error becomes a Failure holding ErrNilFailure.
func FromOutcome[T any](o Outcome[T]) Try[T] {
	if o.IsFailure() {
		err := o.Err()
		if IsNil(err) {
			err = ErrNilFailure
		}
		return failure[T](err)
	}
	v, _ := o.Get()
	return success(v)
}

func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the value of a Success, or the stored error of a Failure.
func (t Try[T]) Get() (T, error) {
	return t.value, t.err
}

// MustGet returns the value of a Success and panics with the stored error
// of a Failure.
func (t Try[T]) MustGet() T {
	if t.err != nil {
		panic(t.err)
	}
	return t.value
}

// Err returns the stored error, nil for a Success.
func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

// ToOptional drops the error. A Success holding a nil reference is
// reported as absent too.
func (t Try[T]) ToOptional() Option[T] {
	if t.err != nil || IsNil(t.value) {
		return None[T]()
	}
	return Some(t.value)
}

func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}
