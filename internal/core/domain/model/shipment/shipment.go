package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrTrackingNumberIsInvalid is returned when a tracking number does not carry
	// the T<counter> form produced by FormatTrackingNumber.
	ErrTrackingNumberIsInvalid = errors.New("tracking number must have the form T<counter>")

	// ErrElementsAreRequired is returned when a shipment is created or updated with
	// no packed elements.
	ErrElementsAreRequired = errors.New("shipment must contain at least one element")

	// ErrShipmentAlreadyCollected is returned when marking a shipment collected twice.
	ErrShipmentAlreadyCollected = errors.New("shipment is already collected")
)

// FormatTrackingNumber renders an allocated counter value as a human-readable
// tracking number, e.g. 1001 -> "T1001".
func FormatTrackingNumber(counter int64) string {
	return fmt.Sprintf("T%d", counter)
}

// Shipment is the aggregate root for a courier shipment. It holds the tracking
// identity, sender and recipient parties, the ordered list of packed elements,
// and the optional job linkage and courier charge.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and a T<counter> tracking number
//   - Sender and recipient are valid parties
//   - Always carries at least one element; elements are replaced as a whole
//   - Can only be created through NewShipment (or RestoreShipment from persistence)
type Shipment struct {
	id             kernel.UUID
	trackingNumber string
	sender         Party
	recipient      Party
	jobNumber      *string
	ceNumber       *string
	courierCharge  *kernel.Money
	elements       []Element
	createdAt      time.Time
	collectedAt    *time.Time

	isConstructed bool
}

// NewShipment creates a Shipment with validation. The tracking number must come
// from the sequence allocator via FormatTrackingNumber; elements must be non-empty.
//
// Example:
//
//	sender, _ := shipment.NewParty("Acme Ltd", "011 555 0101", "1 Factory Rd, Johannesburg")
//	recipient, _ := shipment.NewParty("B. Nkosi", "082 555 0102", "22 Oak Ave, Durban")
//	element, _ := shipment.NewElement("Spare pump housing", "2")
//	s, err := shipment.NewShipment(
//	    kernel.NewUUID(),
//	    shipment.FormatTrackingNumber(1001),
//	    sender, recipient,
//	    []shipment.Element{element},
//	)
func NewShipment(
	id kernel.UUID,
	trackingNumber string,
	sender Party,
	recipient Party,
	elements []Element,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setSender(sender),
		s.setRecipient(recipient),
		s.ReplaceElements(elements),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence without re-deriving
// the creation timestamp.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber string,
	sender Party,
	recipient Party,
	elements []Element,
	jobNumber *string,
	ceNumber *string,
	courierCharge *kernel.Money,
	createdAt time.Time,
	collectedAt *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, trackingNumber, sender, recipient, elements)
	if err != nil {
		return nil, err
	}

	s.jobNumber = jobNumber
	s.ceNumber = ceNumber
	s.courierCharge = courierCharge
	s.createdAt = createdAt
	s.collectedAt = collectedAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the human-readable tracking number, e.g. "T1001".
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Sender returns the sending party.
func (s *Shipment) Sender() Party {
	return s.sender
}

// Recipient returns the receiving party.
func (s *Shipment) Recipient() Party {
	return s.recipient
}

// JobNumber returns the associated job number, or nil if the shipment is not
// linked to a job.
func (s *Shipment) JobNumber() *string {
	return s.jobNumber
}

// CENumber returns the client-engagement number, or nil when absent.
func (s *Shipment) CENumber() *string {
	return s.ceNumber
}

// CourierCharge returns the optional courier charge.
func (s *Shipment) CourierCharge() *kernel.Money {
	return s.courierCharge
}

// Elements returns the ordered packed elements.
func (s *Shipment) Elements() []Element {
	return s.elements
}

// CreatedAt returns the creation timestamp in UTC.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// CollectedAt returns when the recipient collected the shipment, or nil while
// it is still outstanding.
func (s *Shipment) CollectedAt() *time.Time {
	return s.collectedAt
}

// IsCollected reports whether the shipment has been collected.
func (s *Shipment) IsCollected() bool {
	return s.collectedAt != nil
}

// MarkCollected records the collection time. A shipment can only be collected once.
func (s *Shipment) MarkCollected(at time.Time) error {
	if s.collectedAt != nil {
		return ErrShipmentAlreadyCollected
	}

	at = at.UTC()
	s.collectedAt = &at
	return nil
}

// LinkJob attaches a job number to the shipment.
func (s *Shipment) LinkJob(jobNumber string) error {
	if jobNumber == "" {
		return errs.NewValueIsRequiredError("job number")
	}
	s.jobNumber = &jobNumber
	return nil
}

// SetCENumber attaches a client-engagement number to the shipment.
func (s *Shipment) SetCENumber(ceNumber string) error {
	if ceNumber == "" {
		return errs.NewValueIsRequiredError("CE number")
	}
	s.ceNumber = &ceNumber
	return nil
}

// SetCourierCharge records the courier charge for the shipment.
func (s *Shipment) SetCourierCharge(charge kernel.Money) error {
	if err := charge.Validate(); err != nil {
		return err
	}
	s.courierCharge = &charge
	return nil
}

// ReplaceElements swaps the full element list. Updates never patch individual
// elements; the previous list is discarded and the new one takes its place.
func (s *Shipment) ReplaceElements(elements []Element) error {
	if len(elements) == 0 {
		return ErrElementsAreRequired
	}

	for _, e := range elements {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	s.elements = make([]Element, len(elements))
	copy(s.elements, elements)
	return nil
}

// UpdateParties replaces both sender and recipient.
func (s *Shipment) UpdateParties(sender, recipient Party) error {
	return errors.Join(
		s.setSender(sender),
		s.setRecipient(recipient),
	)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if !strings.HasPrefix(trackingNumber, "T") || len(trackingNumber) < 2 {
		return ErrTrackingNumberIsInvalid
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setRecipient(recipient Party) error {
	if err := recipient.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("recipient", err)
	}
	s.recipient = recipient
	return nil
}
