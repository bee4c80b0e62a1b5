package queries

import (
	"errors"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrGetUncollectedShipmentsQueryIsNotConstructed = errors.New(
	"GetUncollectedShipmentsQuery must be created via NewGetUncollectedShipmentsQuery constructor",
)

// GetUncollectedShipmentsQuery retrieves all shipments that have not been
// collected yet, oldest first, for the dispatch overview.
type GetUncollectedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncollectedShipmentsQuery creates a query for outstanding shipments.
// This is a parameterless query.
func NewGetUncollectedShipmentsQuery() GetUncollectedShipmentsQuery {
	return GetUncollectedShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncollectedShipmentsQueryIsNotConstructed if validation fails.
func (q GetUncollectedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUncollectedShipmentsQueryIsNotConstructed)
}

// GetUncollectedShipmentsQueryResponse is one outstanding shipment line.
type GetUncollectedShipmentsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	RecipientName  string
	JobNumber      *string
	CreatedAt      time.Time
}
