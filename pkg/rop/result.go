package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a failure of type F or a success of type S.
// The zero value reads as a Failure carrying the zero F.
type Result[F, S any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   S
	failure   F
	isSuccess bool
}

func Success[F, S any](r S) Result[F, S] {
	return Result[F, S]{
		success:   r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[F, S any](f F) Result[F, S] {
	return Result[F, S]{
		failure:   f,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Attempt runs fn and captures a panic as a normalized failure.
func Attempt[S any](fn func() S) (res Result[*NormalizedError, S]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[*NormalizedError, S](Normalize(r))
		}
	}()

	return Success[*NormalizedError](fn())
}

// Try is Attempt for functions following the (value, error) convention.
func Try[S any](fn func() (S, error)) (res Result[*NormalizedError, S]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[*NormalizedError, S](Normalize(r))
		}
	}()

	out, err := fn()
	if err != nil {
		return Failure[*NormalizedError, S](Normalize(err))
	}
	return Success[*NormalizedError](out)
}

// FailureFrom re-types a failure for a new success type, keeping its identity.
func FailureFrom[F, In, Out any](from Result[F, In]) Result[F, Out] {
	return Result[F, Out]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Widen turns the failure type into error without touching the held value.
// A nil failure, as in a zero Result, becomes an unknown NormalizedError
// rather than a typed nil behind a non-nil error.
func Widen[F error, S any](from Result[F, S]) Result[error, S] {
	out := Result[error, S]{
		success:   from.success,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
	if !from.isSuccess {
		if IsNil(from.failure) {
			out.failure = Normalize(nil)
		} else {
			out.failure = from.failure
		}
	}
	return out
}

func (r Result[F, S]) Value() S {
	return r.success
}

func (r Result[F, S]) Failure() F {
	return r.failure
}

func (r Result[F, S]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[F, S]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[F, S]) GetOrElse(defaultValue S) S {
	if r.isSuccess {
		return r.success
	}
	return defaultValue
}

func (r Result[F, S]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[F, S]) Id() uuid.UUID {
	return r.id
}

func (r Result[F, S]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.success)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}
