package queries

import (
	"context"
	"fmt"

	"courierdocs/internal/core/docgen"
	"courierdocs/internal/core/ports"
)

// GenerateDeliveryNoteDocumentQueryHandler produces the printable delivery
// note: loads the aggregate and the settings, runs the note assembler, and
// renders the resulting pages.
type GenerateDeliveryNoteDocumentQueryHandler struct {
	notes    ports.DeliveryNoteRepository
	settings ports.SettingsRepository
	renderer ports.DocumentRenderer
}

// NewGenerateDeliveryNoteDocumentQueryHandler creates a handler for note
// document generation.
func NewGenerateDeliveryNoteDocumentQueryHandler(
	notes ports.DeliveryNoteRepository,
	settings ports.SettingsRepository,
	renderer ports.DocumentRenderer,
) GenerateDeliveryNoteDocumentQueryHandler {
	return GenerateDeliveryNoteDocumentQueryHandler{
		notes:    notes,
		settings: settings,
		renderer: renderer,
	}
}

// Handle executes the query.
func (h GenerateDeliveryNoteDocumentQueryHandler) Handle(
	ctx context.Context,
	query GenerateDeliveryNoteDocumentQuery,
) (DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return DocumentResponse{}, err
	}

	aggregate, err := h.notes.Get(ctx, query.NoteID())
	if err != nil {
		return DocumentResponse{}, err
	}

	settings, err := h.settings.GetAll(ctx)
	if err != nil {
		return DocumentResponse{}, err
	}

	assembler := docgen.NewDeliveryNoteAssembler(h.renderer)
	pages, err := assembler.Assemble(aggregate, settings)
	if err != nil {
		return DocumentResponse{}, err
	}

	content, err := h.renderer.Render(pages)
	if err != nil {
		return DocumentResponse{}, err
	}

	return DocumentResponse{
		FileName: fmt.Sprintf("%s.pdf", aggregate.NoteNumber()),
		Content:  content,
	}, nil
}
