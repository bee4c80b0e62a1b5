package queries

import (
	"context"
	"database/sql"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDeliveryNoteQueryHandler retrieves one delivery note read model from the
// database.
type GetDeliveryNoteQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNoteQueryHandler creates a handler for single-note queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryNoteQueryHandler(db *gorm.DB) GetDeliveryNoteQueryHandler {
	return GetDeliveryNoteQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the note does
// not exist.
func (h GetDeliveryNoteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNoteQuery,
) (GetDeliveryNoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	response, err := h.loadNote(ctx, query)
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query)
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetDeliveryNoteQueryHandler) loadNote(
	ctx context.Context, query GetDeliveryNoteQuery,
) (GetDeliveryNoteQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			note_number,
			client_name,
			date,
			address,
			contact_person,
			contact_number,
			job_number,
			ce_number,
			subtotal,
			vat,
			total
		FROM delivery_notes
		WHERE id = ?
	`, query.NoteID().String()).Rows()
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDeliveryNoteQueryResponse{}, err
		}
		return GetDeliveryNoteQueryResponse{},
			errs.NewObjectNotFoundError("noteID", query.NoteID())
	}

	var response GetDeliveryNoteQueryResponse
	var id uuid.UUID
	var contactPerson, contactNumber, jobNumber, ceNumber sql.NullString
	var subtotal, vat, total string

	err = rows.Scan(
		&id,
		&response.NoteNumber,
		&response.ClientName,
		&response.Date,
		&response.Address,
		&contactPerson,
		&contactNumber,
		&jobNumber,
		&ceNumber,
		&subtotal,
		&vat,
		&total,
	)
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	noteID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetDeliveryNoteQueryResponse{}, idErr
	}
	response.ID = noteID
	response.ContactPerson = nullableString(contactPerson)
	response.ContactNumber = nullableString(contactNumber)
	response.JobNumber = nullableString(jobNumber)
	response.CENumber = nullableString(ceNumber)

	if response.Subtotal, err = formatAmount(subtotal); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	if response.VAT, err = formatAmount(vat); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	if response.Total, err = formatAmount(total); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	return response, nil
}

func (h GetDeliveryNoteQueryHandler) loadItems(
	ctx context.Context, query GetDeliveryNoteQuery,
) ([]DeliveryNoteItemResponse, error) {
	items := make([]DeliveryNoteItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			quantity,
			description,
			price
		FROM delivery_note_items
		WHERE note_id = ?
		ORDER BY position
	`, query.NoteID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var quantity, description, price string
		if err = rows.Scan(&quantity, &description, &price); err != nil {
			return nil, err
		}

		item, itemErr := buildItemResponse(quantity, description, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func buildItemResponse(quantity, description, price string) (DeliveryNoteItemResponse, error) {
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return DeliveryNoteItemResponse{}, errs.NewValueIsInvalidErrorWithCause("item quantity", err)
	}

	unitPrice, err := kernel.MoneyFromString(price)
	if err != nil {
		return DeliveryNoteItemResponse{}, err
	}

	return DeliveryNoteItemResponse{
		Quantity:    qty.String(),
		Description: description,
		Price:       unitPrice.String(),
		Total:       unitPrice.Mul(qty).String(),
	}, nil
}

func formatAmount(raw string) (string, error) {
	amount, err := kernel.MoneyFromString(raw)
	if err != nil {
		return "", err
	}
	return amount.String(), nil
}
