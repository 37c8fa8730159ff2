package core

import (
	"context"

	"github.com/ib-77/tryto/pkg/try"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgsTries[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan try.Try[T] {
	in := make(chan try.Try[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- try.Of(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChanManyTriesWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan try.Try[T] {
	return ToChanFromArgsTries(ctx, handlers, values...)
}

func ToChanManyTries[T any](ctx context.Context, values []T) <-chan try.Try[T] {
	return ToChanFromArgsTries(ctx, ToChanHandlers[T]{}, values...)
}

// FromChanFirstOrDefault returns the first value read from out, defaultV if
// out is closed or ctx is done first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany drains out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
