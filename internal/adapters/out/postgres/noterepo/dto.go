// Package noterepo provides data transfer objects and mapping functions for
// delivery note persistence. The monetary figures are stored as computed; they
// are restored verbatim rather than recomputed from the item rows.
package noterepo

import (
	"time"

	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryNoteDTO represents the database structure for persisting delivery
// note aggregates.
type DeliveryNoteDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	NoteNumber    string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	ClientName    string          `gorm:"type:varchar(255);not null"`
	Date          time.Time       `gorm:"not null"`
	Address       string          `gorm:"type:text;not null"`
	ContactPerson *string         `gorm:"type:varchar(255)"`
	ContactNumber *string         `gorm:"type:varchar(64)"`
	JobNumber     *string         `gorm:"type:varchar(64);index"`
	CENumber      *string         `gorm:"type:varchar(64);column:ce_number"`
	Items         []ItemDTO       `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	VAT           decimal.Decimal `gorm:"type:numeric(14,2);not null;column:vat"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for delivery note entities.
func (DeliveryNoteDTO) TableName() string {
	return "delivery_notes"
}

// ItemDTO represents one billed line item row. Position preserves the order
// the items were captured in.
type ItemDTO struct {
	NoteID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"primaryKey"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for delivery note item rows.
func (ItemDTO) TableName() string {
	return "delivery_note_items"
}

// fromDomain converts a delivery note domain aggregate to its database representation.
func fromDomain(aggregate *deliverynote.DeliveryNote) DeliveryNoteDTO {
	noteID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))

	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			NoteID:      noteID,
			Position:    i,
			Quantity:    item.Quantity(),
			Description: item.Description(),
			Price:       item.Price().Decimal(),
		})
	}

	return DeliveryNoteDTO{
		ID:            noteID,
		NoteNumber:    aggregate.NoteNumber(),
		ClientName:    aggregate.ClientName(),
		Date:          aggregate.Date(),
		Address:       aggregate.Address(),
		ContactPerson: aggregate.ContactPerson(),
		ContactNumber: aggregate.ContactNumber(),
		JobNumber:     aggregate.JobNumber(),
		CENumber:      aggregate.CENumber(),
		Items:         items,
		Subtotal:      aggregate.Subtotal().Decimal(),
		VAT:           aggregate.VAT().Decimal(),
		Total:         aggregate.Total().Decimal(),
	}
}

// toDomain converts a database DTO to a delivery note domain aggregate.
func toDomain(dto DeliveryNoteDTO) (*deliverynote.DeliveryNote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]deliverynote.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := deliverynote.NewItem(
			itemDto.Quantity, itemDto.Description, kernel.MoneyFromDecimal(itemDto.Price))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return deliverynote.RestoreDeliveryNote(
		id,
		dto.NoteNumber,
		dto.ClientName,
		dto.Date,
		dto.Address,
		items,
		dto.ContactPerson,
		dto.ContactNumber,
		dto.JobNumber,
		dto.CENumber,
		kernel.MoneyFromDecimal(dto.Subtotal),
		kernel.MoneyFromDecimal(dto.VAT),
		kernel.MoneyFromDecimal(dto.Total),
	)
}
