package commands

import (
	"context"
	"errors"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/sequence"
	"courierdocs/internal/core/domain/model/shipment"
	"courierdocs/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Allocates the next tracking number from the shipment counter inside the same
// transaction as the insert, so a failed insert never consumes a number.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), sender, recipient, elements, "", "", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command. A conflict on the derived
// tracking number means another writer bypassed the counter lock; the whole
// transaction, including allocation, is retried exactly once.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.create(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		err = h.create(ctx, cmd)
	}

	return err
}

func (h *CreateShipmentCommandHandler) create(ctx context.Context, cmd CreateShipmentCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.SequenceRepository().Next(ctx, sequence.ShipmentCounter)
	if err != nil {
		return err
	}

	aggregate, err := buildShipment(cmd, shipment.FormatTrackingNumber(number))
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildShipment(cmd CreateShipmentCommand, trackingNumber string) (*shipment.Shipment, error) {
	sender, err := shipment.NewParty(cmd.Sender().Name, cmd.Sender().Contact, cmd.Sender().Address)
	if err != nil {
		return nil, err
	}

	recipient, err := shipment.NewParty(cmd.Recipient().Name, cmd.Recipient().Contact, cmd.Recipient().Address)
	if err != nil {
		return nil, err
	}

	elements, err := buildElements(cmd.Elements())
	if err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(cmd.ShipmentID(), trackingNumber, sender, recipient, elements)
	if err != nil {
		return nil, err
	}

	if cmd.JobNumber() != "" {
		if err = aggregate.LinkJob(cmd.JobNumber()); err != nil {
			return nil, err
		}
	}
	if cmd.CENumber() != "" {
		if err = aggregate.SetCENumber(cmd.CENumber()); err != nil {
			return nil, err
		}
	}
	if cmd.CourierCharge() != "" {
		charge, chargeErr := kernel.MoneyFromString(cmd.CourierCharge())
		if chargeErr != nil {
			return nil, chargeErr
		}
		if err = aggregate.SetCourierCharge(charge); err != nil {
			return nil, err
		}
	}

	return aggregate, nil
}

func buildElements(data []ElementData) ([]shipment.Element, error) {
	elements := make([]shipment.Element, 0, len(data))
	for _, d := range data {
		element, err := shipment.NewElement(d.Description, d.Quantity)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}

	return elements, nil
}
