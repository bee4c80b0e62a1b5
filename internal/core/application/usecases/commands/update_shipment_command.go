package commands

import (
	"errors"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a request to replace a shipment's mutable
// state: both parties, the full element list, and the optional job linkage and
// courier charge. The tracking number never changes after creation.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	sender        PartyData
	recipient     PartyData
	elements      []ElementData
	jobNumber     string
	ceNumber      string
	courierCharge string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update an existing shipment.
// Elements are replaced as a whole; the list must be non-empty.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	sender PartyData,
	recipient PartyData,
	elements []ElementData,
	jobNumber string,
	ceNumber string,
	courierCharge string,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		jobNumber:     jobNumber,
		ceNumber:      ceNumber,
		courierCharge: courierCharge,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setSender(sender),
		cmd.setRecipient(recipient),
		cmd.setElements(elements),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Sender returns the replacement sending party details.
func (c UpdateShipmentCommand) Sender() PartyData {
	return c.sender
}

// Recipient returns the replacement receiving party details.
func (c UpdateShipmentCommand) Recipient() PartyData {
	return c.recipient
}

// Elements returns the replacement element lines.
func (c UpdateShipmentCommand) Elements() []ElementData {
	return c.elements
}

// JobNumber returns the optional job number, empty when absent.
func (c UpdateShipmentCommand) JobNumber() string {
	return c.jobNumber
}

// CENumber returns the optional CE number, empty when absent.
func (c UpdateShipmentCommand) CENumber() string {
	return c.ceNumber
}

// CourierCharge returns the optional courier charge as raw text, empty when absent.
func (c UpdateShipmentCommand) CourierCharge() string {
	return c.courierCharge
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setSender(sender PartyData) error {
	if sender.Name == "" {
		return ErrSenderNameIsRequired
	}

	c.sender = sender
	return nil
}

func (c *UpdateShipmentCommand) setRecipient(recipient PartyData) error {
	if recipient.Name == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *UpdateShipmentCommand) setElements(elements []ElementData) error {
	if len(elements) == 0 {
		return ErrElementsAreRequired
	}

	c.elements = elements
	return nil
}
