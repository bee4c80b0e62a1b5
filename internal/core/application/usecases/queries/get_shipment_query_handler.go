package queries

import (
	"context"
	"database/sql"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment read model from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the shipment
// does not exist.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	response, err := h.loadShipment(ctx, query)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	elements, err := h.loadElements(ctx, query)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.Elements = elements

	return response, nil
}

func (h GetShipmentQueryHandler) loadShipment(
	ctx context.Context, query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_name,
			sender_contact,
			sender_address,
			recipient_name,
			recipient_contact,
			recipient_address,
			job_number,
			ce_number,
			courier_charge,
			created_at,
			collected_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentQueryResponse{}, err
		}
		return GetShipmentQueryResponse{},
			errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	var response GetShipmentQueryResponse
	var id uuid.UUID
	var jobNumber, ceNumber, courierCharge sql.NullString
	var collectedAt sql.NullTime

	err = rows.Scan(
		&id,
		&response.TrackingNumber,
		&response.SenderName,
		&response.SenderContact,
		&response.SenderAddress,
		&response.RecipientName,
		&response.RecipientContact,
		&response.RecipientAddress,
		&jobNumber,
		&ceNumber,
		&courierCharge,
		&response.CreatedAt,
		&collectedAt,
	)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetShipmentQueryResponse{}, idErr
	}
	response.ID = shipmentID
	response.JobNumber = nullableString(jobNumber)
	response.CENumber = nullableString(ceNumber)
	response.CourierCharge = nullableMoney(courierCharge)
	response.CollectedAt = nullableTime(collectedAt)

	return response, nil
}

func (h GetShipmentQueryHandler) loadElements(
	ctx context.Context, query GetShipmentQuery,
) ([]ShipmentElementResponse, error) {
	elements := make([]ShipmentElementResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			description,
			quantity
		FROM shipment_elements
		WHERE shipment_id = ?
		ORDER BY position
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var element ShipmentElementResponse
		if err = rows.Scan(&element.Description, &element.Quantity); err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return elements, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}

func nullableMoney(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}

	amount, err := kernel.MoneyFromString(v.String)
	if err != nil {
		return &v.String
	}

	formatted := amount.String()
	return &formatted
}
