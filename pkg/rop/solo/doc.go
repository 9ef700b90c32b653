// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[F, S]. Failure always short-circuits: it is passed through
// unchanged and no success-side function is called.
//
// Highlights:
// - Succeed/Fail/Attempt: construct Result[F, S]
// - Validate: apply validation producing a normalized failure on invalid input
// - Map/MapSafe: transform successful values (MapSafe captures panics)
// - Chain/ChainSafe: move from Result[F, In] to Result[F, Out]
// - Apply: lift a (curried) function held in a Result over another Result
// - Tee/DoubleTee: side-effect helpers
// - Fold: reduce to a concrete value via failure/success handlers
// - Sequence: collect many Results, failing fast
package solo
