package rop

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[S any] interface {
	// Value returns the success payload
	Value() S
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome defines an interface for settled values that hold either a failure or a success
type Outcome[F, S any] interface {
	ValueProvider[S]
	// Failure returns the failure payload if the operation failed
	Failure() F
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Id identifies the settled value across re-typing
	Id() uuid.UUID
}

var _ Outcome[error, int] = Result[error, int]{}
