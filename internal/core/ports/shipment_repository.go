// Package ports defines the persistence and rendering contracts for the
// courier-documents domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate. Elements are
	// replaced as a whole: rows absent from the aggregate are removed.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its ordered elements.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
