package try

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the read side of a Try; other result types satisfying it can
// be brought in with FromOutcome.
type Outcome[T any] interface {
	// Get returns the value, or the error if the operation failed
	Get() (T, error)
	// Err returns the error if the operation failed
	Err() error
	IsSuccess() bool
	IsFailure() bool
}

// Identified is implemented by values that carry an instance identity.
type Identified interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ Outcome[int] = Try[int]{}
	_ Identified   = Try[int]{}
)
