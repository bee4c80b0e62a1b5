package commands

import (
	"errors"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrSenderNameIsRequired    = errors.New("sender name is required")
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
	ErrElementsAreRequired     = errors.New("at least one element is required")
)

// PartyData carries the raw sender or recipient details of a shipment command.
type PartyData struct {
	Name    string
	Contact string
	Address string
}

// ElementData carries one raw packed-element line. Quantity is free text,
// e.g. "2" or "1 box".
type ElementData struct {
	Description string
	Quantity    string
}

// CreateShipmentCommand represents a request to register a new shipment.
// The tracking number is not part of the command: it is allocated from the
// shipment counter inside the handler's transaction.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(
//	    kernel.NewUUID(),
//	    PartyData{Name: "Acme Ltd", Contact: "011 555 0101", Address: "1 Factory Rd"},
//	    PartyData{Name: "B. Nkosi", Contact: "082 555 0102", Address: "22 Oak Ave"},
//	    []ElementData{{Description: "Spare pump housing", Quantity: "2"}},
//	    "J-2041", "", "250.00",
//	)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	sender        PartyData
	recipient     PartyData
	elements      []ElementData
	jobNumber     string
	ceNumber      string
	courierCharge string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Job number, CE number, and courier charge are optional; empty means absent.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	sender PartyData,
	recipient PartyData,
	elements []ElementData,
	jobNumber string,
	ceNumber string,
	courierCharge string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
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
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Sender returns the sending party details.
func (c CreateShipmentCommand) Sender() PartyData {
	return c.sender
}

// Recipient returns the receiving party details.
func (c CreateShipmentCommand) Recipient() PartyData {
	return c.recipient
}

// Elements returns the packed element lines.
func (c CreateShipmentCommand) Elements() []ElementData {
	return c.elements
}

// JobNumber returns the optional job number, empty when absent.
func (c CreateShipmentCommand) JobNumber() string {
	return c.jobNumber
}

// CENumber returns the optional CE number, empty when absent.
func (c CreateShipmentCommand) CENumber() string {
	return c.ceNumber
}

// CourierCharge returns the optional courier charge as raw text, empty when absent.
func (c CreateShipmentCommand) CourierCharge() string {
	return c.courierCharge
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setSender(sender PartyData) error {
	if sender.Name == "" {
		return ErrSenderNameIsRequired
	}

	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setRecipient(recipient PartyData) error {
	if recipient.Name == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *CreateShipmentCommand) setElements(elements []ElementData) error {
	if len(elements) == 0 {
		return ErrElementsAreRequired
	}

	c.elements = elements
	return nil
}
