// Package jobrepo provides read access to job records. Jobs are written by an
// external import integration; this application only reads them to enrich
// waybills with customer, product, and description details.
package jobrepo

import (
	"courierdocs/internal/core/domain/model/job"
	"courierdocs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents one job row.
type JobDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	ProductName  string    `gorm:"type:varchar(255)"`
	Description  string    `gorm:"type:text"`
}

// TableName specifies the database table name for job rows.
func (JobDTO) TableName() string {
	return "jobs"
}

// toDomain converts a database DTO to a job domain aggregate.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return job.NewJob(id, dto.Number, dto.CustomerName, dto.ProductName, dto.Description)
}
