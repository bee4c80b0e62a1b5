package commands

import (
	"context"
)

// MarkShipmentCollectedCommandHandler records shipment collection.
type MarkShipmentCollectedCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewMarkShipmentCollectedCommandHandler creates a handler for collection operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewMarkShipmentCollectedCommandHandler(uowFactory ShipmentUoWFactory) MarkShipmentCollectedCommandHandler {
	return MarkShipmentCollectedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the collection command.
func (h *MarkShipmentCollectedCommandHandler) Handle(ctx context.Context, cmd MarkShipmentCollectedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkCollected(cmd.CollectedAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
