package commands

import (
	"errors"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/guard"
)

var (
	ErrCreateDeliveryNoteCommandIsNotConstructed = errors.New(
		"CreateDeliveryNoteCommand must be created via NewCreateDeliveryNoteCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
	ErrAddressIsRequired    = errors.New("delivery address is required")
	ErrItemsAreRequired     = errors.New("at least one item is required")
)

// ItemData carries one raw billed line of a delivery note. Quantity and price
// are text as received; both must parse as decimal numbers or the handler
// rejects the whole note.
type ItemData struct {
	Quantity    string
	Description string
	Price       string
}

// CreateDeliveryNoteCommand represents a request to create a delivery note.
// The note number is allocated from the delivery note counter inside the
// handler's transaction; subtotal, VAT, and total are computed by the domain
// constructor, never supplied by the caller.
type CreateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID        kernel.UUID
	clientName    string
	date          time.Time
	address       string
	items         []ItemData
	contactPerson string
	contactNumber string
	jobNumber     string
	ceNumber      string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryNoteCommand creates a command to register a new delivery note.
// Contact person/number and job/CE numbers are optional; empty means absent.
func NewCreateDeliveryNoteCommand(
	noteID kernel.UUID,
	clientName string,
	date time.Time,
	address string,
	items []ItemData,
	contactPerson string,
	contactNumber string,
	jobNumber string,
	ceNumber string,
) (CreateDeliveryNoteCommand, error) {
	cmd := CreateDeliveryNoteCommand{
		date:          date,
		contactPerson: contactPerson,
		contactNumber: contactNumber,
		jobNumber:     jobNumber,
		ceNumber:      ceNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setClientName(clientName),
		cmd.setAddress(address),
		cmd.setItems(items),
	); err != nil {
		return CreateDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryNoteCommandIsNotConstructed if validation fails.
func (c CreateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the unique identifier for the new note.
func (c CreateDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ClientName returns the billed client's name.
func (c CreateDeliveryNoteCommand) ClientName() string {
	return c.clientName
}

// Date returns the note date.
func (c CreateDeliveryNoteCommand) Date() time.Time {
	return c.date
}

// Address returns the delivery address.
func (c CreateDeliveryNoteCommand) Address() string {
	return c.address
}

// Items returns the raw billed lines.
func (c CreateDeliveryNoteCommand) Items() []ItemData {
	return c.items
}

// ContactPerson returns the optional contact person, empty when absent.
func (c CreateDeliveryNoteCommand) ContactPerson() string {
	return c.contactPerson
}

// ContactNumber returns the optional contact number, empty when absent.
func (c CreateDeliveryNoteCommand) ContactNumber() string {
	return c.contactNumber
}

// JobNumber returns the optional job number, empty when absent.
func (c CreateDeliveryNoteCommand) JobNumber() string {
	return c.jobNumber
}

// CENumber returns the optional CE number, empty when absent.
func (c CreateDeliveryNoteCommand) CENumber() string {
	return c.ceNumber
}

func (c *CreateDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *CreateDeliveryNoteCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateDeliveryNoteCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateDeliveryNoteCommand) setItems(items []ItemData) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}
