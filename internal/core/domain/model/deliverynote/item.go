package deliverynote

import (
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a value object for a billed line item on a delivery note.
// Unlike shipment elements, quantity is numeric: it participates in the
// subtotal computation.
type Item struct {
	quantity    decimal.Decimal
	description string
	price       kernel.Money

	isConstructed bool
}

// NewItem creates an Item. Description is mandatory; quantity must be positive
// and price non-negative. Item validity is decided here, once; a note never
// holds an item that is excluded from its totals.
func NewItem(quantity decimal.Decimal, description string, price kernel.Money) (Item, error) {
	if description == "" {
		return Item{}, errs.NewValueIsRequiredError("item description")
	}
	if !quantity.IsPositive() {
		return Item{}, errs.NewValueIsOutOfRangeError("item quantity", quantity.String(), "> 0", "unbounded")
	}
	if err := price.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		quantity:      quantity,
		description:   description,
		price:         price,
		isConstructed: true,
	}, nil
}

// ItemFromStrings creates an Item from raw quantity and price text, as received
// from a request. Returns a ValueIsInvalidError when either does not parse as a
// decimal number.
func ItemFromStrings(quantity, description, price string) (Item, error) {
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity", err)
	}

	unitPrice, err := kernel.MoneyFromString(price)
	if err != nil {
		return Item{}, err
	}

	return NewItem(qty, description, unitPrice)
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}

// Quantity returns the numeric quantity.
func (i Item) Quantity() decimal.Decimal {
	return i.quantity
}

// Description returns the billed description.
func (i Item) Description() string {
	return i.description
}

// Price returns the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Total returns quantity times unit price.
func (i Item) Total() kernel.Money {
	return i.price.Mul(i.quantity)
}
