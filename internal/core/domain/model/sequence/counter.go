// Package sequence provides the named counter aggregate behind human-readable
// identifiers such as tracking numbers and delivery-note numbers.
//
// A counter's current number is non-decreasing over time. Each allocation
// strictly increments it by one, and the increment is only visible once the
// surrounding unit of work commits. The repository layer is responsible for
// serializing concurrent allocations on the same counter name.
package sequence

import (
	"errors"

	"courierdocs/internal/pkg/errs"
)

// Counter names used by the application.
const (
	ShipmentCounter     = "shipmentCounter"
	DeliveryNoteCounter = "deliveryNoteCounter"
)

// DefaultStart is the current number a counter is created with when first seen.
// The first allocation on a fresh counter therefore returns 1001.
const DefaultStart = 1000

// ErrCounterIsNotConstructed is returned when a Counter instance was not created
// through NewCounter or RestoreCounter.
var ErrCounterIsNotConstructed = errors.New(
	"Counter must be created via NewCounter or RestoreCounter")

// Counter is a named, monotonically increasing sequence. It is owned and
// mutated exclusively by the sequence repository; callers never set the
// current number directly.
type Counter struct {
	name          string
	currentNumber int64

	isConstructed bool
}

// NewCounter creates a fresh counter starting at DefaultStart.
func NewCounter(name string) (*Counter, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("counter name")
	}

	return &Counter{
		name:          name,
		currentNumber: DefaultStart,
		isConstructed: true,
	}, nil
}

// RestoreCounter reconstructs a counter from persistence.
func RestoreCounter(name string, currentNumber int64) (*Counter, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("counter name")
	}
	if currentNumber < 0 {
		return nil, errs.NewValueIsOutOfRangeError("current number", currentNumber, 0, "unbounded")
	}

	return &Counter{
		name:          name,
		currentNumber: currentNumber,
		isConstructed: true,
	}, nil
}

// Validate ensures the Counter instance was properly constructed.
func (c *Counter) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCounterIsNotConstructed
	}
	return nil
}

// Name returns the counter name.
func (c *Counter) Name() string {
	return c.name
}

// CurrentNumber returns the last allocated value.
func (c *Counter) CurrentNumber() int64 {
	return c.currentNumber
}

// Next increments the counter by one and returns the new value.
func (c *Counter) Next() int64 {
	c.currentNumber++
	return c.currentNumber
}
