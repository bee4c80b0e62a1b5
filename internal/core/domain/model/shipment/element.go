package shipment

import (
	"courierdocs/internal/pkg/errs"
)

// Element is a value object for a single packed element of a shipment.
// Quantity is free-form text ("2", "1 box", "bundle of 6") and is never
// interpreted numerically.
type Element struct {
	description string
	quantity    string

	isConstructed bool
}

// NewElement creates an Element. Description is mandatory, quantity is free text.
func NewElement(description, quantity string) (Element, error) {
	if description == "" {
		return Element{}, errs.NewValueIsRequiredError("element description")
	}

	return Element{
		description:   description,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Element was created via NewElement.
func (e Element) Validate() error {
	if !e.isConstructed {
		return errs.NewValueIsRequiredError("element must be created via NewElement")
	}
	return nil
}

// Description returns what was packed.
func (e Element) Description() string {
	return e.description
}

// Quantity returns the free-form quantity text.
func (e Element) Quantity() string {
	return e.quantity
}
