package queries

import (
	"context"
	"database/sql"
	"time"

	"courierdocs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// uncollectedShipmentRow is the raw scan target for the outstanding-shipments query.
type uncollectedShipmentRow struct {
	id             uuid.UUID
	trackingNumber string
	recipientName  string
	jobNumber      sql.NullString
	createdAt      time.Time
}

// GetUncollectedShipmentsQueryHandler retrieves shipments awaiting collection
// from the database.
type GetUncollectedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUncollectedShipmentsQueryHandler creates a handler for outstanding-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetUncollectedShipmentsQueryHandler(db *gorm.DB) GetUncollectedShipmentsQueryHandler {
	return GetUncollectedShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns shipments with no collection timestamp,
// oldest first.
func (h GetUncollectedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUncollectedShipmentsQuery,
) ([]GetUncollectedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			recipient_name,
			job_number,
			created_at
		FROM shipments
		WHERE collected_at IS NULL
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scanned := make([]uncollectedShipmentRow, 0)
	for rows.Next() {
		var row uncollectedShipmentRow
		err = rows.Scan(
			&row.id,
			&row.trackingNumber,
			&row.recipientName,
			&row.jobNumber,
			&row.createdAt,
		)
		if err != nil {
			return nil, err
		}
		scanned = append(scanned, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	responses := lo.Map(scanned, func(row uncollectedShipmentRow, _ int) GetUncollectedShipmentsQueryResponse {
		shipmentID, _ := kernel.UUIDFromBytes(row.id[:])
		return GetUncollectedShipmentsQueryResponse{
			ID:             shipmentID,
			TrackingNumber: row.trackingNumber,
			RecipientName:  row.recipientName,
			JobNumber:      nullableString(row.jobNumber),
			CreatedAt:      row.createdAt,
		}
	})

	return responses, nil
}
