package ports

import (
	"context"

	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/kernel"
)

// DeliveryNoteRepository defines the persistence contract for delivery note
// aggregates.
type DeliveryNoteRepository interface {
	// Add persists a new delivery note with its items and computed figures.
	Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error

	// Get retrieves a delivery note by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error)
}
