// Package task provides Task[S], a deferred Result whose failure side is
// always a *rop.NormalizedError.
//
// A Task stores an operation and does nothing until it is run. Each Run
// re-executes the whole chain; nothing is cached.
//
// Key operations:
// - Of/Succeed/Fail/FromResult: build a Task
// - Map: transform the settled value (panics become failures)
// - Chain: run a dependent Task only after a success
// - Ap/Lift2/Sequence/Traverse: run independent Tasks concurrently and combine them
// - Tee/DoubleTee: side effects without changing the Result
// - Run/Start: settle to a Result, blocking or through a channel
// - Fold/FoldAsync: collapse into a plain value via failure/success handlers
//
// Combinators never look at ctx.Err(): a started chain runs to completion.
// The context is only passed through to the wrapped operations.
package task
