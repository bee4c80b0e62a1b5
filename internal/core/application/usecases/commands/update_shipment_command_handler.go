package commands

import (
	"context"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"
)

// UpdateShipmentCommandHandler handles the business logic for shipment updates.
// Loads the aggregate, replaces its mutable state, and persists it in one
// transaction. Element replacement is all-or-nothing: the repository removes
// rows absent from the updated aggregate.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment update command.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	if err = applyShipmentUpdate(aggregate, cmd); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyShipmentUpdate(aggregate *shipment.Shipment, cmd UpdateShipmentCommand) error {
	sender, err := shipment.NewParty(cmd.Sender().Name, cmd.Sender().Contact, cmd.Sender().Address)
	if err != nil {
		return err
	}

	recipient, err := shipment.NewParty(cmd.Recipient().Name, cmd.Recipient().Contact, cmd.Recipient().Address)
	if err != nil {
		return err
	}

	if err = aggregate.UpdateParties(sender, recipient); err != nil {
		return err
	}

	elements, err := buildElements(cmd.Elements())
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceElements(elements); err != nil {
		return err
	}

	if cmd.JobNumber() != "" {
		if err = aggregate.LinkJob(cmd.JobNumber()); err != nil {
			return err
		}
	}
	if cmd.CENumber() != "" {
		if err = aggregate.SetCENumber(cmd.CENumber()); err != nil {
			return err
		}
	}
	if cmd.CourierCharge() != "" {
		charge, chargeErr := kernel.MoneyFromString(cmd.CourierCharge())
		if chargeErr != nil {
			return chargeErr
		}
		if err = aggregate.SetCourierCharge(charge); err != nil {
			return err
		}
	}

	return nil
}
