// Package sequencerepo persists the named counters behind tracking and
// delivery-note numbers. Allocation locks the counter row for the duration of
// the surrounding transaction, which serializes concurrent allocations on the
// same counter and ties the increment's visibility to the transaction outcome.
package sequencerepo

import "courierdocs/internal/core/domain/model/sequence"

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name          string `gorm:"type:varchar(64);primaryKey"`
	CurrentNumber int64  `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for counter rows.
func (CounterDTO) TableName() string {
	return "counters"
}

// fromDomain converts a counter aggregate to its database representation.
func fromDomain(counter *sequence.Counter) CounterDTO {
	return CounterDTO{
		Name:          counter.Name(),
		CurrentNumber: counter.CurrentNumber(),
	}
}
