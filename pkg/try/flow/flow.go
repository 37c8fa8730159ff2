package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/tryto/pkg/try"
	"github.com/ib-77/tryto/pkg/try/core"
)

// ErrNotEvaluated marks computations All never started because the
// context was done first.
var ErrNotEvaluated = errors.New("flow: computation not evaluated")

// ErrNoResult is returned by First when no try arrives.
var ErrNoResult = errors.New("flow: no result")

// Stage turns one try into another.
type Stage[In, Out any] func(ctx context.Context, input try.Try[In]) try.Try[Out]

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err error) Out
}

// Run starts lines goroutines that apply stage to every try read from
// inputCh. The returned channel is closed once all lines stopped. A
// non-positive lines takes the count from ctx (core.WithWorkerOptions),
// falling back to runtime.NumCPU.
func Run[In, Out any](ctx context.Context, inputCh <-chan try.Try[In], stage Stage[In, Out],
	lines int) <-chan try.Try[Out] {
	return RunWithHandlers(ctx, inputCh, stage, core.CancellationHandlers[In, Out]{}, lines)
}

// RunWithHandlers is Run with handlers for the tries a line holds when ctx
// is done.
func RunWithHandlers[In, Out any](ctx context.Context, inputCh <-chan try.Try[In], stage Stage[In, Out],
	handlers core.CancellationHandlers[In, Out], lines int) <-chan try.Try[Out] {

	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 0)
	}

	out := make(chan try.Try[Out])
	wg := &sync.WaitGroup{}

	for n := 0; n < lines; n++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, stage, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Evaluate runs every computation with try.To on lines goroutines and
// streams the outcomes in completion order.
func Evaluate[T any](ctx context.Context, computations []func() (T, error), lines int) <-chan try.Try[T] {
	return EvaluateWithHandlers(ctx, core.ToChanHandlers[func() (T, error)]{}, computations, lines)
}

// EvaluateWithHandlers is Evaluate with handlers observing how computations
// are fed to the lines, including the ones left behind when ctx is done.
func EvaluateWithHandlers[T any](ctx context.Context, handlers core.ToChanHandlers[func() (T, error)],
	computations []func() (T, error), lines int) <-chan try.Try[T] {
	return Run(ctx, core.ToChanManyTriesWithHandlers(ctx, handlers, computations),
		FlatMap(func(_ context.Context, computation func() (T, error)) try.Try[T] {
			return try.To(computation)
		}), lines)
}

// First returns the first try read from ch. It fails with ErrNoResult when
// ch is closed empty or ctx is done first.
func First[T any](ctx context.Context, ch <-chan try.Try[T]) try.Try[T] {
	none := try.OfFailure[T](ErrNoResult)
	first := core.FromChanFirstOrDefault(ctx, ch, none)
	if first.Id() == none.Id() && ctx.Err() != nil {
		return try.OfFailure[T](fmt.Errorf("%w: %w", ErrNoResult, context.Cause(ctx)))
	}
	return first
}

// All runs every computation with try.To on lines goroutines and returns
// the outcomes in input order. Computations that were not started when ctx
// was done are reported as failures wrapping ErrNotEvaluated and the
// context error.
func All[T any](ctx context.Context, computations []func() (T, error), lines int) []try.Try[T] {
	results := make([]try.Try[T], len(computations))
	evaluated := make([]bool, len(computations))

	indexes := make([]int, len(computations))
	for i := range indexes {
		indexes[i] = i
	}

	done := Run(ctx, core.ToChanManyTries(ctx, indexes),
		Tee(func(_ context.Context, r try.Try[int]) {
			i := r.MustGet()
			results[i] = try.To(computations[i])
			evaluated[i] = true
		}), lines)

	for range done {
	}

	for i := range results {
		if !evaluated[i] {
			results[i] = try.OfFailure[T](fmt.Errorf("%w: %w", ErrNotEvaluated, context.Cause(ctx)))
		}
	}
	return results
}

func Map[In, Out any](f func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input try.Try[In]) try.Try[Out] {
		return try.Map(input, func(v In) (Out, error) { return f(ctx, v) })
	}
}

func FlatMap[In, Out any](f func(ctx context.Context, r In) try.Try[Out]) Stage[In, Out] {
	return func(ctx context.Context, input try.Try[In]) try.Try[Out] {
		return try.FlatMap(input, func(v In) try.Try[Out] { return f(ctx, v) })
	}
}

func Filter[T any](p func(ctx context.Context, r T) bool) Stage[T, T] {
	return func(ctx context.Context, input try.Try[T]) try.Try[T] {
		return input.Filter(func(v T) bool { return p(ctx, v) })
	}
}

func Recover[T any](f func(ctx context.Context, err error) (T, error)) Stage[T, T] {
	return func(ctx context.Context, input try.Try[T]) try.Try[T] {
		return input.Recover(func(err error) (T, error) { return f(ctx, err) })
	}
}

// Tee runs sideEffect on every try and passes it on unchanged.
func Tee[T any](sideEffect func(ctx context.Context, r try.Try[T])) Stage[T, T] {
	return func(ctx context.Context, input try.Try[T]) try.Try[T] {
		sideEffect(ctx, input)
		return input
	}
}

// Then composes two stages.
func Then[In, Mid, Out any](first Stage[In, Mid], second Stage[Mid, Out]) Stage[In, Out] {
	return func(ctx context.Context, input try.Try[In]) try.Try[Out] {
		return second(ctx, first(ctx, input))
	}
}

// Finally reduces every try read from input with handlers.
func Finally[In, Out any](ctx context.Context, input <-chan try.Try[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}
				v := try.Fold(in,
					func(r In) Out { return handlers.OnSuccess(ctx, r) },
					func(err error) Out { return handlers.OnFailure(ctx, err) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Collect drains ch.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	return core.FromChanMany(ctx, ch)
}
