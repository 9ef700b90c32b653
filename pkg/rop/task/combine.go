package task

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/roptask/pkg/rop"
	"github.com/ib-77/roptask/pkg/rop/solo"
)

// Tee runs sideEffect on success and passes the Result on untouched.
// A panic inside sideEffect turns the Result into a failure.
func Tee[S any](t Task[S], sideEffect func(ctx context.Context, r S)) Task[S] {
	return DoubleTee(t, sideEffect, nil)
}

func DoubleTee[S any](t Task[S],
	onSuccess func(ctx context.Context, r S),
	onFailure func(ctx context.Context, err *rop.NormalizedError)) Task[S] {

	return Task[S]{thunk: func(ctx context.Context) Result[S] {
		res := t.Run(ctx)

		teed := rop.Attempt(func() Result[S] {
			return solo.DoubleTee(res,
				func(r S) {
					if onSuccess != nil {
						onSuccess(ctx, r)
					}
				},
				func(err *rop.NormalizedError) {
					if onFailure != nil {
						onFailure(ctx, err)
					}
				})
		})
		if teed.IsFailure() {
			return rop.FailureFrom[*rop.NormalizedError, Result[S], S](teed)
		}
		return teed.Value()
	}}
}

// Lift2 applies a binary function to two Tasks that run concurrently.
func Lift2[A, B, Out any](fn func(a A, b B) Out, first Task[A], second Task[B]) Task[Out] {
	curried := Map(first, func(a A) func(B) Out {
		return func(b B) Out {
			return fn(a, b)
		}
	})
	return Ap(curried, second)
}

// Sequence starts every Task at once and collects their values in order.
// The failure with the lowest index wins.
func Sequence[S any](tasks ...Task[S]) Task[[]S] {
	return Task[[]S]{thunk: func(ctx context.Context) Result[[]S] {
		results := make([]Result[S], len(tasks))

		var g errgroup.Group
		for i, t := range tasks {
			g.Go(func() error {
				results[i] = t.Run(ctx)
				return nil
			})
		}
		// failures travel in results; Wait only joins the goroutines
		g.Wait()

		return solo.Sequence(results...)
	}}
}

// Traverse builds one Task per item and runs them as Sequence does.
func Traverse[In, Out any](items []In, fn func(in In) Task[Out]) Task[[]Out] {
	return Chain(Succeed(items), func(items []In) Task[[]Out] {
		tasks := make([]Task[Out], 0, len(items))
		for _, item := range items {
			tasks = append(tasks, fn(item))
		}
		return Sequence(tasks...)
	})
}
