package queries

import (
	"errors"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrGenerateDeliveryNoteDocumentQueryIsNotConstructed = errors.New(
	"GenerateDeliveryNoteDocumentQuery must be created via NewGenerateDeliveryNoteDocumentQuery constructor",
)

// GenerateDeliveryNoteDocumentQuery requests the printable document for a
// delivery note.
type GenerateDeliveryNoteDocumentQuery struct {
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateDeliveryNoteDocumentQuery creates a query for a note's document.
func NewGenerateDeliveryNoteDocumentQuery(noteID kernel.UUID) (GenerateDeliveryNoteDocumentQuery, error) {
	if err := noteID.Validate(); err != nil {
		return GenerateDeliveryNoteDocumentQuery{}, err
	}

	return GenerateDeliveryNoteDocumentQuery{
		noteID: noteID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGenerateDeliveryNoteDocumentQueryIsNotConstructed if validation fails.
func (q GenerateDeliveryNoteDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGenerateDeliveryNoteDocumentQueryIsNotConstructed)
}

// NoteID returns the note whose document is requested.
func (q GenerateDeliveryNoteDocumentQuery) NoteID() kernel.UUID {
	return q.noteID
}
