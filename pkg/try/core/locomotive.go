package core

import (
	"context"
	"sync"

	"github.com/ib-77/tryto/pkg/try"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan try.Try[In], outCh chan<- try.Try[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed try.Try[In], outCh chan<- try.Try[Out])
	OnCancelProcessed   func(ctx context.Context, in try.Try[In], processed try.Try[Out], outCh chan<- try.Try[Out])
}

// Locomotive pulls tries from inputCh, runs engine on each and pushes the
// outcome to outCh until inputCh is closed or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan try.Try[In], outCh chan<- try.Try[Out],
	engine func(ctx context.Context, input try.Try[In]) try.Try[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in try.Try[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	log := LoggerFrom(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Debug("flow: line stopped", "err", ctx.Err())
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				log.Debug("flow: line stopped before processing", "err", ctx.Err(), "try_id", in.Id())
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				log.Debug("flow: line stopped after processing", "err", ctx.Err(), "try_id", pr.Id())
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}
