package ports

import "context"

// SequenceRepository allocates identifiers from durable named counters.
//
// Next must be called inside a unit of work: the implementation locks the
// counter row for the duration of the transaction, so the allocated number is
// only observable once the surrounding transaction commits, and is never
// reused if it rolls back.
type SequenceRepository interface {
	// Next increments the named counter and returns the new value. A counter
	// that does not exist yet is created at its default start, so the first
	// allocation returns the start value plus one.
	Next(ctx context.Context, name string) (int64, error)
}
