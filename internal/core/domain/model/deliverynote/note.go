package deliverynote

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeliveryNoteIsNotConstructed is returned when a DeliveryNote instance was not
	// created through the NewDeliveryNote factory method.
	ErrDeliveryNoteIsNotConstructed = errors.New(
		"DeliveryNote must be created via NewDeliveryNote constructor")

	// ErrNoteNumberIsInvalid is returned when a note number does not carry the
	// DN<counter> form produced by FormatNoteNumber.
	ErrNoteNumberIsInvalid = errors.New("note number must have the form DN<counter>")

	// ErrItemsAreRequired is returned when a note is created with no line items.
	ErrItemsAreRequired = errors.New("delivery note must contain at least one item")
)

// vatRate is the statutory VAT rate applied to every delivery note subtotal.
var vatRate = decimal.NewFromFloat(0.15)

// FormatNoteNumber renders an allocated counter value as a human-readable
// delivery-note number, e.g. 1001 -> "DN1001".
func FormatNoteNumber(counter int64) string {
	return fmt.Sprintf("DN%d", counter)
}

// DeliveryNote is the aggregate root for a client delivery note. It holds the
// note identity, the client and delivery details, the billed line items, and
// the derived monetary figures.
//
// Subtotal, VAT, and total are computed exactly once, inside the constructor,
// and then travel with the note. Reconstruction from persistence restores the
// stored figures instead of recomputing them.
type DeliveryNote struct {
	id            kernel.UUID
	noteNumber    string
	clientName    string
	date          time.Time
	address       string
	contactPerson *string
	contactNumber *string
	jobNumber     *string
	ceNumber      *string
	items         []Item
	subtotal      kernel.Money
	vat           kernel.Money
	total         kernel.Money

	isConstructed bool
}

// NewDeliveryNote creates a DeliveryNote with validation and computes the derived
// figures from the item list: subtotal = sum(qty * price), vat = subtotal * 0.15,
// total = subtotal + vat.
func NewDeliveryNote(
	id kernel.UUID,
	noteNumber string,
	clientName string,
	date time.Time,
	address string,
	items []Item,
) (*DeliveryNote, error) {
	n := &DeliveryNote{isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setNoteNumber(noteNumber),
		n.setClientName(clientName),
		n.setAddress(address),
		n.setItems(items),
	); err != nil {
		return nil, err
	}

	n.date = date
	n.computeTotals()
	return n, nil
}

// RestoreDeliveryNote reconstructs a DeliveryNote from persistence. The stored
// monetary figures are restored verbatim; they are not recomputed from items.
func RestoreDeliveryNote(
	id kernel.UUID,
	noteNumber string,
	clientName string,
	date time.Time,
	address string,
	items []Item,
	contactPerson, contactNumber, jobNumber, ceNumber *string,
	subtotal, vat, total kernel.Money,
) (*DeliveryNote, error) {
	n := &DeliveryNote{isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setNoteNumber(noteNumber),
		n.setClientName(clientName),
		n.setAddress(address),
		n.setItems(items),
	); err != nil {
		return nil, err
	}

	n.date = date
	n.contactPerson = contactPerson
	n.contactNumber = contactNumber
	n.jobNumber = jobNumber
	n.ceNumber = ceNumber
	n.subtotal = subtotal
	n.vat = vat
	n.total = total
	return n, nil
}

// Validate ensures the DeliveryNote instance was properly constructed.
func (n *DeliveryNote) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrDeliveryNoteIsNotConstructed
	}
	return nil
}

// ID returns the note's unique identifier.
func (n *DeliveryNote) ID() kernel.UUID {
	return n.id
}

// NoteNumber returns the human-readable note number, e.g. "DN1001".
func (n *DeliveryNote) NoteNumber() string {
	return n.noteNumber
}

// ClientName returns the billed client's name.
func (n *DeliveryNote) ClientName() string {
	return n.clientName
}

// Date returns the note date.
func (n *DeliveryNote) Date() time.Time {
	return n.date
}

// Address returns the delivery address.
func (n *DeliveryNote) Address() string {
	return n.address
}

// ContactPerson returns the optional contact person.
func (n *DeliveryNote) ContactPerson() *string {
	return n.contactPerson
}

// ContactNumber returns the optional contact number.
func (n *DeliveryNote) ContactNumber() *string {
	return n.contactNumber
}

// JobNumber returns the optional associated job number.
func (n *DeliveryNote) JobNumber() *string {
	return n.jobNumber
}

// CENumber returns the optional client-engagement number.
func (n *DeliveryNote) CENumber() *string {
	return n.ceNumber
}

// Items returns the ordered billed line items.
func (n *DeliveryNote) Items() []Item {
	return n.items
}

// Subtotal returns the sum of all line totals.
func (n *DeliveryNote) Subtotal() kernel.Money {
	return n.subtotal
}

// VAT returns 15% of the subtotal.
func (n *DeliveryNote) VAT() kernel.Money {
	return n.vat
}

// Total returns subtotal plus VAT.
func (n *DeliveryNote) Total() kernel.Money {
	return n.total
}

// SetContact records the optional contact person and number.
func (n *DeliveryNote) SetContact(person, number string) {
	if person != "" {
		n.contactPerson = &person
	}
	if number != "" {
		n.contactNumber = &number
	}
}

// LinkJob attaches job and CE numbers to the note. Either may be empty.
func (n *DeliveryNote) LinkJob(jobNumber, ceNumber string) {
	if jobNumber != "" {
		n.jobNumber = &jobNumber
	}
	if ceNumber != "" {
		n.ceNumber = &ceNumber
	}
}

func (n *DeliveryNote) computeTotals() {
	subtotal := kernel.MoneyFromInt(0)
	for _, item := range n.items {
		subtotal = subtotal.Add(item.Total())
	}

	n.subtotal = subtotal
	n.vat = subtotal.Mul(vatRate)
	n.total = n.subtotal.Add(n.vat)
}

func (n *DeliveryNote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *DeliveryNote) setNoteNumber(noteNumber string) error {
	if !strings.HasPrefix(noteNumber, "DN") || len(noteNumber) < 3 {
		return ErrNoteNumberIsInvalid
	}
	n.noteNumber = noteNumber
	return nil
}

func (n *DeliveryNote) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	n.clientName = clientName
	return nil
}

func (n *DeliveryNote) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	n.address = address
	return nil
}

func (n *DeliveryNote) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	n.items = make([]Item, len(items))
	copy(n.items, items)
	return nil
}
