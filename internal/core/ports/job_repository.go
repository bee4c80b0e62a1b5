package ports

import (
	"context"

	"courierdocs/internal/core/domain/model/job"
)

// JobRepository defines the read contract for job records referenced by
// shipments and delivery notes.
type JobRepository interface {
	// GetByNumber retrieves a job by its business number, e.g. "J-2041".
	// Returns an ObjectNotFoundError when no such job exists.
	GetByNumber(ctx context.Context, number string) (*job.Job, error)
}
