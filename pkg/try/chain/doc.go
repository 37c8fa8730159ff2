// Package chain provides a fluent wrapper around try.Try[T] that carries a
// context.Context through every step.
//
// Key operations:
// - Start/FromValue/Run: begin a chain from a Try, a value or a computation
// - Then: continue with a function returning try.Try[U]
// - ThenTry: continue with a function returning (U, error)
// - Map: transform the successful value (T -> U)
// - Validate: fail the chain when a check does not hold
// - Ensure/OnFailure: side effects without changing the result
// - Recover: turn a failure back into a value
// - Finally: collapse the chain into a final value via handlers
//
// A step whose context is already done is not run; the chain fails with
// the context error instead.
package chain
