// Package try contains Try[T], a value holding either the result of a
// computation or the error it failed with, and the combinators to chain
// fallible steps without checking the error after every call.
//
// Highlights:
// - To/ToVoid: run a computation now, capturing errors and panics, with
//   optional cleanup actions whose failures are only logged
// - Of/OfFailure/FromPair: wrap known values or errors
// - Map/FlatMap/Filter: transform a Success, short-circuit a Failure
// - Recover/RecoverWith/OrElse/OrElseGet: act on a Failure
// - Foreach/OnException: side effects on either branch
// - Transform/Fold/Failed: handle both branches or invert them
//
// Transformation callbacks are guarded: a panic becomes a Failure holding a
// *PanicError. Foreach and OnException only guard against returned errors
// and let panics through to the caller.
//
// A Try is immutable and safe to share between goroutines. Running many
// computations concurrently is the job of package flow.
package try
