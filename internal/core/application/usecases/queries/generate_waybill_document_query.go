package queries

import (
	"errors"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrGenerateWaybillDocumentQueryIsNotConstructed = errors.New(
	"GenerateWaybillDocumentQuery must be created via NewGenerateWaybillDocumentQuery constructor",
)

// GenerateWaybillDocumentQuery requests the printable waybill for a shipment.
type GenerateWaybillDocumentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateWaybillDocumentQuery creates a query for a shipment's waybill document.
func NewGenerateWaybillDocumentQuery(shipmentID kernel.UUID) (GenerateWaybillDocumentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GenerateWaybillDocumentQuery{}, err
	}

	return GenerateWaybillDocumentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGenerateWaybillDocumentQueryIsNotConstructed if validation fails.
func (q GenerateWaybillDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGenerateWaybillDocumentQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose waybill is requested.
func (q GenerateWaybillDocumentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// DocumentResponse carries a rendered document and the filename it should be
// served under.
type DocumentResponse struct {
	FileName string
	Content  []byte
}
