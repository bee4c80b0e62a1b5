package queries_test

import (
	"context"
	"testing"
	"time"

	"courierdocs/internal/core/application/usecases/queries"
	"courierdocs/internal/core/docgen"
	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedNote(t *testing.T, noteNumber string) *deliverynote.DeliveryNote {
	t.Helper()

	hose, err := deliverynote.ItemFromStrings("2", "Hydraulic hose", "125.00")
	require.NoError(t, err)

	note, err := deliverynote.NewDeliveryNote(
		kernel.NewUUID(), noteNumber, "Mining Supplies CC",
		time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		"14 Quarry Rd, Boksburg",
		[]deliverynote.Item{hose})
	require.NoError(t, err)
	return note
}

func notePagesContain(pages []docgen.Page, want string) bool {
	for _, page := range pages {
		for _, instruction := range page.Instructions {
			if text, ok := instruction.(docgen.TextInstruction); ok && text.Text == want {
				return true
			}
		}
	}
	return false
}

func TestGenerateDeliveryNoteDocumentQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	note := storedNote(t, "DN1001")

	notes := &MockNoteRepository{}
	notes.On("Get", ctx, note.ID()).Return(note, nil)

	settings := &MockSettingsRepository{}
	settings.On("GetAll", ctx).Return(map[string]string{"disclaimer": "E&OE."}, nil)

	renderer := &stubRenderer{content: []byte("%PDF-note")}
	handler := queries.NewGenerateDeliveryNoteDocumentQueryHandler(notes, settings, renderer)

	query, err := queries.NewGenerateDeliveryNoteDocumentQuery(note.ID())
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, "DN1001.pdf", response.FileName)
	assert.Equal(t, []byte("%PDF-note"), response.Content)
	require.NotEmpty(t, renderer.renderedPages)
	assert.True(t, notePagesContain(renderer.renderedPages, "DELIVERY NOTE"))
	assert.True(t, notePagesContain(renderer.renderedPages, "DN1001"))
	assert.True(t, notePagesContain(renderer.renderedPages, "E&OE."))

	notes.AssertExpectations(t)
	settings.AssertExpectations(t)
}

func TestGenerateDeliveryNoteDocumentQueryHandler_NoteNotFound(t *testing.T) {
	ctx := context.Background()
	noteID := kernel.NewUUID()

	notes := &MockNoteRepository{}
	notes.On("Get", ctx, noteID).
		Return(nil, errs.NewObjectNotFoundError("deliveryNote", noteID.String()))

	handler := queries.NewGenerateDeliveryNoteDocumentQueryHandler(
		notes, &MockSettingsRepository{}, &stubRenderer{})

	query, err := queries.NewGenerateDeliveryNoteDocumentQuery(noteID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGenerateDeliveryNoteDocumentQueryHandler_RenderFailure(t *testing.T) {
	ctx := context.Background()
	note := storedNote(t, "DN1002")

	notes := &MockNoteRepository{}
	notes.On("Get", ctx, note.ID()).Return(note, nil)

	settings := &MockSettingsRepository{}
	settings.On("GetAll", ctx).Return(map[string]string{}, nil)

	renderer := &stubRenderer{renderErr: assert.AnError}
	handler := queries.NewGenerateDeliveryNoteDocumentQueryHandler(notes, settings, renderer)

	query, err := queries.NewGenerateDeliveryNoteDocumentQuery(note.ID())
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, assert.AnError)
}

func TestGenerateDeliveryNoteDocumentQueryHandler_InvalidQuery(t *testing.T) {
	handler := queries.NewGenerateDeliveryNoteDocumentQueryHandler(
		&MockNoteRepository{}, &MockSettingsRepository{}, &stubRenderer{})

	_, err := handler.Handle(context.Background(), queries.GenerateDeliveryNoteDocumentQuery{})
	require.ErrorIs(t, err, queries.ErrGenerateDeliveryNoteDocumentQueryIsNotConstructed)
}
