// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the domain aggregates and read projection rows
// directly, returning plain response structs for the transport layer.
package queries

import (
	"errors"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment with its packed elements.
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment by identifier.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment identifier.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ShipmentElementResponse is one packed element line of a shipment response.
type ShipmentElementResponse struct {
	Description string
	Quantity    string
}

// GetShipmentQueryResponse carries the full read model of one shipment.
// CourierCharge is the plain two-decimal amount, nil when absent.
type GetShipmentQueryResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	SenderName       string
	SenderContact    string
	SenderAddress    string
	RecipientName    string
	RecipientContact string
	RecipientAddress string
	JobNumber        *string
	CENumber         *string
	CourierCharge    *string
	Elements         []ShipmentElementResponse
	CreatedAt        time.Time
	CollectedAt      *time.Time
}
