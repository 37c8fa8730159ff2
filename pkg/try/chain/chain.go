package chain

import (
	"context"
	"fmt"

	"github.com/ib-77/tryto/pkg/try"
)

// Chain wraps a try.Try with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result try.Try[T]
}

// Start creates a new chain from a try.Try
func Start[T any](ctx context.Context, result try.Try[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, try.Of(value))
}

// Run creates a new chain from the outcome of computation. When ctx is
// already done computation is skipped and the chain fails with the context
// error; the onFinally actions run in both cases.
func Run[T any](ctx context.Context, computation func(ctx context.Context) (T, error),
	onFinally ...func() error) *Chain[T] {
	return Start(ctx, try.To(func() (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return computation(ctx)
	}, onFinally...))
}

// Result returns the underlying try.Try
func (c *Chain[T]) Result() try.Try[T] {
	return c.result
}

// Context returns the context the chain runs with
func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns try.Try[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) try.Try[U]) *Chain[U] {
	return next(c, try.FlatMap(c.live(), func(v T) try.Try[U] {
		return onSuccess(c.ctx, v)
	}))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, try.Map(c.live(), func(v T) (U, error) {
		return tryOnSuccess(c.ctx, v)
	}))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return next(c, try.Map(c.live(), func(v T) (U, error) {
		return onSuccess(c.ctx, v), nil
	}))
}

// Validate fails the chain when validate reports the value as invalid. The
// error wraps try.ErrPredicateNotSatisfied and carries errMsg.
func (c *Chain[T]) Validate(validate func(ctx context.Context, in T) (valid bool, errMsg string)) *Chain[T] {
	return next(c, c.live().FilterErr(func(v T) (bool, error) {
		if valid, errMsg := validate(c.ctx, v); !valid {
			return false, fmt.Errorf("%w: %s", try.ErrPredicateNotSatisfied, errMsg)
		}
		return true, nil
	}))
}

// Ensure performs a side effect without changing the result.
// An error returned by onSuccess fails the chain.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T) error) *Chain[T] {
	return next(c, c.live().Foreach(func(v T) error {
		return onSuccess(c.ctx, v)
	}))
}

// OnFailure observes the error of a failed chain
func (c *Chain[T]) OnFailure(onFailure func(context.Context, error)) *Chain[T] {
	return next(c, c.result.OnException(func(err error) error {
		onFailure(c.ctx, err)
		return nil
	}))
}

// Recover turns a failed chain back into a successful one
func (c *Chain[T]) Recover(onFailure func(context.Context, error) (T, error)) *Chain[T] {
	return next(c, c.result.Recover(func(err error) (T, error) {
		return onFailure(c.ctx, err)
	}))
}

// Finally collapses the chain into a final result
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return try.Fold(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}

// live returns the current result, failed with the context error when a
// successful chain can not continue.
func (c *Chain[T]) live() try.Try[T] {
	if c.result.IsSuccess() {
		if err := c.ctx.Err(); err != nil {
			return try.OfFailure[T](err)
		}
	}
	return c.result
}

func next[T, U any](c *Chain[T], result try.Try[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: result,
	}
}
