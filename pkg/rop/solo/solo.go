package solo

import (
	"errors"

	"github.com/ib-77/roptask/pkg/rop"
)

func Succeed[F, S any](input S) rop.Result[F, S] {
	return rop.Success[F](input)
}

func Fail[F, S any](failure F) rop.Result[F, S] {
	return rop.Failure[F, S](failure)
}

// Attempt is ofAttempt: a panic inside fn becomes a normalized failure.
func Attempt[S any](fn func() S) rop.Result[*rop.NormalizedError, S] {
	return rop.Attempt(fn)
}

func Validate[S any](input S,
	validate func(in S) (isValid bool, errMsg string)) rop.Result[*rop.NormalizedError, S] {

	return Chain(rop.Success[*rop.NormalizedError](input),
		func(in S) rop.Result[*rop.NormalizedError, S] {
			if isValid, errMsg := validate(in); !isValid {
				return rop.Failure[*rop.NormalizedError, S](rop.Normalize(errors.New(errMsg)))
			}
			return rop.Success[*rop.NormalizedError](in)
		})
}

// Map expects onSuccess not to panic; use MapSafe otherwise.
func Map[F, In, Out any](input rop.Result[F, In],
	onSuccess func(r In) Out) rop.Result[F, Out] {

	if input.IsSuccess() {
		return rop.Success[F](onSuccess(input.Value()))
	}
	return rop.FailureFrom[F, In, Out](input)
}

func MapSafe[F error, In, Out any](input rop.Result[F, In],
	onSuccess func(r In) Out) rop.Result[error, Out] {

	if input.IsFailure() {
		return rop.FailureFrom[error, In, Out](rop.Widen(input))
	}
	return rop.Widen(rop.Attempt(func() Out {
		return onSuccess(input.Value())
	}))
}

func Chain[F, In, Out any](input rop.Result[F, In],
	onSuccess func(r In) rop.Result[F, Out]) rop.Result[F, Out] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return rop.FailureFrom[F, In, Out](input)
}

func ChainSafe[F error, In, Out any](input rop.Result[F, In],
	onSuccess func(r In) rop.Result[F, Out]) rop.Result[error, Out] {

	if input.IsFailure() {
		return rop.FailureFrom[error, In, Out](rop.Widen(input))
	}

	next := rop.Attempt(func() rop.Result[F, Out] {
		return onSuccess(input.Value())
	})
	if next.IsFailure() {
		return rop.FailureFrom[error, rop.Result[F, Out], Out](rop.Widen(next))
	}
	return rop.Widen(next.Value())
}

// Apply lifts the function held by fn over the value held by input. The
// function side's failure wins when both sides failed.
func Apply[F, In, Out any](fn rop.Result[F, func(In) Out],
	input rop.Result[F, In]) rop.Result[F, Out] {

	if fn.IsFailure() {
		return rop.FailureFrom[F, func(In) Out, Out](fn)
	}
	if input.IsFailure() {
		return rop.FailureFrom[F, In, Out](input)
	}
	return rop.Success[F](fn.Value()(input.Value()))
}

func Tee[F, S any](input rop.Result[F, S],
	onSuccess func(r rop.Result[F, S])) rop.Result[F, S] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func DoubleTee[F, S any](input rop.Result[F, S],
	onSuccess func(r S),
	onFailure func(f F)) rop.Result[F, S] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Value())
		}
	} else if onFailure != nil {
		onFailure(input.Failure())
	}

	return input
}

// Fold is the only sanctioned way out of a Result.
func Fold[F, In, Out any](input rop.Result[F, In],
	onFailure func(f F) Out,
	onSuccess func(r In) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Failure())
}

// Sequence collects the success values, stopping at the first failure.
func Sequence[F, S any](inputs ...rop.Result[F, S]) rop.Result[F, []S] {
	values := make([]S, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return rop.FailureFrom[F, S, []S](in)
		}
		values = append(values, in.Value())
	}
	return rop.Success[F](values)
}
