// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. It converts between the shipment domain aggregate and its
// relational representation: one shipments row plus ordered shipment_elements rows.
package shipmentrepo

import (
	"time"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TrackingNumber string           `gorm:"type:varchar(32);not null;uniqueIndex"`
	Sender         PartyDTO         `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient      PartyDTO         `gorm:"embedded;embeddedPrefix:recipient_"`
	JobNumber      *string          `gorm:"type:varchar(64);index"`
	CENumber       *string          `gorm:"type:varchar(64);column:ce_number"`
	CourierCharge  *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Elements       []ElementDTO     `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time        `gorm:"not null"`
	CollectedAt    *time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents the embedded sender or recipient columns within the
// shipments table.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Contact string `gorm:"type:varchar(255)"`
	Address string `gorm:"type:text"`
}

// ElementDTO represents one packed element row. Position preserves the order
// the elements were captured in.
type ElementDTO struct {
	ShipmentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	Description string    `gorm:"type:text;not null"`
	Quantity    string    `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for shipment element rows.
func (ElementDTO) TableName() string {
	return "shipment_elements"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()
	elements := make([]ElementDTO, 0, len(aggregate.Elements()))

	for i, e := range aggregate.Elements() {
		elements = append(elements, ElementDTO{
			ShipmentID:  shipmentID,
			Position:    i,
			Description: e.Description(),
			Quantity:    e.Quantity(),
		})
	}

	var charge *decimal.Decimal
	if aggregate.CourierCharge() != nil {
		raw := aggregate.CourierCharge().Decimal()
		charge = &raw
	}

	return ShipmentDTO{
		ID:             shipmentID,
		TrackingNumber: aggregate.TrackingNumber(),
		Sender: PartyDTO{
			Name:    aggregate.Sender().Name(),
			Contact: aggregate.Sender().Contact(),
			Address: aggregate.Sender().Address(),
		},
		Recipient: PartyDTO{
			Name:    aggregate.Recipient().Name(),
			Contact: aggregate.Recipient().Contact(),
			Address: aggregate.Recipient().Address(),
		},
		JobNumber:     aggregate.JobNumber(),
		CENumber:      aggregate.CENumber(),
		CourierCharge: charge,
		Elements:      elements,
		CreatedAt:     aggregate.CreatedAt(),
		CollectedAt:   aggregate.CollectedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sender, err := shipment.NewParty(dto.Sender.Name, dto.Sender.Contact, dto.Sender.Address)
	if err != nil {
		return nil, err
	}

	recipient, err := shipment.NewParty(dto.Recipient.Name, dto.Recipient.Contact, dto.Recipient.Address)
	if err != nil {
		return nil, err
	}

	elements := make([]shipment.Element, 0, len(dto.Elements))
	for _, elementDto := range dto.Elements {
		element, elementErr := shipment.NewElement(elementDto.Description, elementDto.Quantity)
		if elementErr != nil {
			return nil, elementErr
		}
		elements = append(elements, element)
	}

	var charge *kernel.Money
	if dto.CourierCharge != nil {
		raw := kernel.MoneyFromDecimal(*dto.CourierCharge)
		charge = &raw
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingNumber,
		sender,
		recipient,
		elements,
		dto.JobNumber,
		dto.CENumber,
		charge,
		dto.CreatedAt,
		dto.CollectedAt,
	)
}
