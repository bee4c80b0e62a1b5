// Package job provides the Job aggregate referenced by shipments. Jobs arrive
// through an external import integration; this application only reads them to
// enrich waybills with customer, product, and description details.
package job

import (
	"errors"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created through
// the NewJob factory method.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Job is a client job a shipment may be linked to. One job can carry several
// client-engagement (CE) numbers; the shipment records which one applies.
type Job struct {
	id           kernel.UUID
	number       string
	customerName string
	productName  string
	description  string

	isConstructed bool
}

// NewJob creates a Job with validation.
func NewJob(id kernel.UUID, number, customerName, productName, description string) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setID(id),
		j.setNumber(number),
		j.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	j.productName = productName
	j.description = description
	return j, nil
}

// Validate ensures the Job instance was properly constructed.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Number returns the human-readable job number.
func (j *Job) Number() string {
	return j.number
}

// CustomerName returns the client the job was opened for.
func (j *Job) CustomerName() string {
	return j.customerName
}

// ProductName returns the product the job concerns, possibly empty.
func (j *Job) ProductName() string {
	return j.productName
}

// Description returns the free-text job description, possibly empty.
func (j *Job) Description() string {
	return j.description
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("job number")
	}
	j.number = number
	return nil
}

func (j *Job) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	j.customerName = customerName
	return nil
}
