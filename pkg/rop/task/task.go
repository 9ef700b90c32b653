package task

import (
	"context"
	"errors"

	"github.com/ib-77/roptask/pkg/rop"
	"github.com/ib-77/roptask/pkg/rop/solo"
)

// ErrNoOperation is the failure cause of running a Task that holds no operation.
var ErrNoOperation = errors.New("task: no operation to run")

// Result is what a Task settles to. Every Task operator may inject a
// NormalizedError, so the failure side is fixed to it.
type Result[S any] = rop.Result[*rop.NormalizedError, S]

// Task is a deferred Result. It owns a single thunk that is only invoked by
// Run (or Start, Fold, FoldAsync). Outcomes are not cached: every run
// re-executes the whole chain, side effects included.
type Task[S any] struct {
	thunk func(ctx context.Context) Result[S]
}

// Of wraps an operation without invoking it. A returned error or a panic
// inside op settles the Task as a normalized failure.
func Of[S any](op func(ctx context.Context) (S, error)) Task[S] {
	if op == nil {
		return Task[S]{}
	}

	return Task[S]{thunk: func(ctx context.Context) Result[S] {
		return rop.Try(func() (S, error) {
			return op(ctx)
		})
	}}
}

func Succeed[S any](value S) Task[S] {
	return FromResult(rop.Success[*rop.NormalizedError](value))
}

// Fail builds a Task that settles as Normalize(reason).
func Fail[S any](reason any) Task[S] {
	return FromResult(rop.Failure[*rop.NormalizedError, S](rop.Normalize(reason)))
}

func FromResult[S any](r Result[S]) Task[S] {
	return Task[S]{thunk: func(context.Context) Result[S] {
		return r
	}}
}

// Run invokes the thunk and waits for the Result. It never panics.
func (t Task[S]) Run(ctx context.Context) (res Result[S]) {
	if t.thunk == nil {
		return failure[S](ErrNoOperation)
	}

	defer func() {
		if r := recover(); r != nil {
			res = failure[S](r)
		}
	}()

	return t.thunk(ctx)
}

// Start runs the Task on its own goroutine. The channel yields one Result
// and is then closed.
func (t Task[S]) Start(ctx context.Context) <-chan Result[S] {
	out := make(chan Result[S], 1)

	go func() {
		defer close(out)
		out <- t.Run(ctx)
	}()

	return out
}

// Map applies onSuccess to the settled value. onSuccess must be a plain
// synchronous transform; follow-up work that waits on something belongs in Chain.
func Map[In, Out any](t Task[In], onSuccess func(r In) Out) Task[Out] {
	return Task[Out]{thunk: func(ctx context.Context) Result[Out] {
		in := t.Run(ctx)
		if in.IsFailure() {
			return rop.FailureFrom[*rop.NormalizedError, In, Out](in)
		}
		return rop.Attempt(func() Out {
			return onSuccess(in.Value())
		})
	}}
}

// Chain sequences a dependent Task. onSuccess is not called, and the next
// Task is not built, until t settles as a success.
func Chain[In, Out any](t Task[In], onSuccess func(r In) Task[Out]) Task[Out] {
	return Task[Out]{thunk: func(ctx context.Context) Result[Out] {
		in := t.Run(ctx)
		if in.IsFailure() {
			return rop.FailureFrom[*rop.NormalizedError, In, Out](in)
		}

		next := rop.Attempt(func() Task[Out] {
			return onSuccess(in.Value())
		})
		if next.IsFailure() {
			return rop.FailureFrom[*rop.NormalizedError, Task[Out], Out](next)
		}
		return next.Value().Run(ctx)
	}}
}

// Ap starts fn and input together and waits for both. When both fail the
// failure of fn is kept.
//
// Each operand starts on its own goroutine, so both have begun before
// either is awaited, but which one begins first is not fixed. Side effects
// must not depend on the order between the two.
func Ap[In, Out any](fn Task[func(In) Out], input Task[In]) Task[Out] {
	return Task[Out]{thunk: func(ctx context.Context) Result[Out] {
		fnCh := fn.Start(ctx)
		inputCh := input.Start(ctx)

		fnRes := <-fnCh
		inputRes := <-inputCh

		applied := rop.Attempt(func() Result[Out] {
			return solo.Apply(fnRes, inputRes)
		})
		if applied.IsFailure() {
			return rop.FailureFrom[*rop.NormalizedError, Result[Out], Out](applied)
		}
		return applied.Value()
	}}
}

// Fold runs the Task and hands the payload to exactly one of the callbacks.
func Fold[In, Out any](ctx context.Context, t Task[In],
	onFailure func(err *rop.NormalizedError) Out,
	onSuccess func(r In) Out) Out {

	return solo.Fold(t.Run(ctx), onFailure, onSuccess)
}

// FoldAsync is Fold on its own goroutine.
func FoldAsync[In, Out any](ctx context.Context, t Task[In],
	onFailure func(err *rop.NormalizedError) Out,
	onSuccess func(r In) Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)
		out <- Fold(ctx, t, onFailure, onSuccess)
	}()

	return out
}

func failure[S any](reason any) Result[S] {
	return rop.Failure[*rop.NormalizedError, S](rop.Normalize(reason))
}
