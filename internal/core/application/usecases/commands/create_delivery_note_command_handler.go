package commands

import (
	"context"
	"errors"

	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/sequence"
	"courierdocs/internal/pkg/errs"
)

// CreateDeliveryNoteCommandHandler handles the business logic for delivery note
// creation. Allocates the next note number from the delivery note counter inside
// the same transaction as the insert and persists the note together with its
// constructor-computed subtotal, VAT, and total.
type CreateDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewCreateDeliveryNoteCommandHandler creates a handler for note creation operations.
// Requires a NoteUoWFactory for transactional persistence.
func NewCreateDeliveryNoteCommandHandler(uowFactory NoteUoWFactory) CreateDeliveryNoteCommandHandler {
	return CreateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note creation command. A conflict on the derived note
// number is retried exactly once, same as shipment creation.
func (h *CreateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.create(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		err = h.create(ctx, cmd)
	}

	return err
}

func (h *CreateDeliveryNoteCommandHandler) create(ctx context.Context, cmd CreateDeliveryNoteCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.SequenceRepository().Next(ctx, sequence.DeliveryNoteCounter)
	if err != nil {
		return err
	}

	aggregate, err := buildDeliveryNote(cmd, deliverynote.FormatNoteNumber(number))
	if err != nil {
		return err
	}

	if err = uow.DeliveryNoteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildDeliveryNote(cmd CreateDeliveryNoteCommand, noteNumber string) (*deliverynote.DeliveryNote, error) {
	items := make([]deliverynote.Item, 0, len(cmd.Items()))
	for _, d := range cmd.Items() {
		item, err := deliverynote.ItemFromStrings(d.Quantity, d.Description, d.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := deliverynote.NewDeliveryNote(
		cmd.NoteID(), noteNumber, cmd.ClientName(), cmd.Date(), cmd.Address(), items)
	if err != nil {
		return nil, err
	}

	aggregate.SetContact(cmd.ContactPerson(), cmd.ContactNumber())
	aggregate.LinkJob(cmd.JobNumber(), cmd.CENumber())
	return aggregate, nil
}
