package commands

import (
	"errors"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var ErrMarkShipmentCollectedCommandIsNotConstructed = errors.New(
	"MarkShipmentCollectedCommand must be created via NewMarkShipmentCollectedCommand constructor",
)

// MarkShipmentCollectedCommand represents a request to record that the
// recipient collected a shipment. Collection happens at most once; a second
// attempt surfaces the domain error.
type MarkShipmentCollectedCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	collectedAt time.Time

	guard guard.ConstructorGuard
}

// NewMarkShipmentCollectedCommand creates a command to mark a shipment collected
// at the given time.
func NewMarkShipmentCollectedCommand(
	shipmentID kernel.UUID, collectedAt time.Time,
) (MarkShipmentCollectedCommand, error) {
	cmd := MarkShipmentCollectedCommand{
		collectedAt: collectedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return MarkShipmentCollectedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkShipmentCollectedCommandIsNotConstructed if validation fails.
func (c MarkShipmentCollectedCommand) Validate() error {
	return c.guard.Validate(ErrMarkShipmentCollectedCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to mark collected.
func (c MarkShipmentCollectedCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CollectedAt returns the collection time.
func (c MarkShipmentCollectedCommand) CollectedAt() time.Time {
	return c.collectedAt
}

func (c *MarkShipmentCollectedCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
