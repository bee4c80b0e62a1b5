package shipment

import (
	"courierdocs/internal/pkg/errs"
)

// Party is a value object describing one side of a shipment: the sender or the
// recipient. Name is mandatory; contact and address are free text and may be empty.
// Party is immutable after construction.
type Party struct {
	name    string
	contact string
	address string

	isConstructed bool
}

// NewParty creates a Party with a mandatory name and optional contact details.
func NewParty(name, contact, address string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}

	return Party{
		name:          name,
		contact:       contact,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Party was created via NewParty.
func (p Party) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("party must be created via NewParty")
	}
	return nil
}

// Name returns the party's display name.
func (p Party) Name() string {
	return p.name
}

// Contact returns the free-text contact details, possibly empty.
func (p Party) Contact() string {
	return p.contact
}

// Address returns the free-text address, possibly empty.
func (p Party) Address() string {
	return p.address
}
