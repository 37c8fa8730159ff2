// Package flow runs tries concurrently. It lifts the try combinators over
// channels and evaluates computations on a fixed number of lines.
//
// Common usage:
// - All: evaluate computations with try.To, results in input order
// - Evaluate/EvaluateWithHandlers: same, results streamed as they complete
// - First: take the first try of a stream
// - Run: execute a stage over an input channel with a fixed number of lines
// - Map/FlatMap/Filter/Recover/Tee: stages built from try combinators
// - Finally: reduce each try to a plain value on completion
//
// The number of lines can be stored in the context with
// core.WithWorkerOptions and a logger with core.WithLogger.
package flow
