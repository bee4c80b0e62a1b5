package queries

import (
	"errors"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrGetDeliveryNoteQueryIsNotConstructed = errors.New(
	"GetDeliveryNoteQuery must be created via NewGetDeliveryNoteQuery constructor",
)

// GetDeliveryNoteQuery retrieves a single delivery note with its items and
// stored monetary figures.
type GetDeliveryNoteQuery struct {
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryNoteQuery creates a query for one delivery note by identifier.
func NewGetDeliveryNoteQuery(noteID kernel.UUID) (GetDeliveryNoteQuery, error) {
	if err := noteID.Validate(); err != nil {
		return GetDeliveryNoteQuery{}, err
	}

	return GetDeliveryNoteQuery{
		noteID: noteID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryNoteQueryIsNotConstructed if validation fails.
func (q GetDeliveryNoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNoteQueryIsNotConstructed)
}

// NoteID returns the requested note identifier.
func (q GetDeliveryNoteQuery) NoteID() kernel.UUID {
	return q.noteID
}

// DeliveryNoteItemResponse is one billed line of a delivery note response.
// Amounts are plain two-decimal strings.
type DeliveryNoteItemResponse struct {
	Quantity    string
	Description string
	Price       string
	Total       string
}

// GetDeliveryNoteQueryResponse carries the full read model of one delivery note.
// Subtotal, VAT, and Total are the stored figures, not recomputed.
type GetDeliveryNoteQueryResponse struct {
	ID            kernel.UUID
	NoteNumber    string
	ClientName    string
	Date          time.Time
	Address       string
	ContactPerson *string
	ContactNumber *string
	JobNumber     *string
	CENumber      *string
	Items         []DeliveryNoteItemResponse
	Subtotal      string
	VAT           string
	Total         string
}
