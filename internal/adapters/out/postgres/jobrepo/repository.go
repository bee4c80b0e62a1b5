package jobrepo

import (
	"context"
	"errors"

	"courierdocs/internal/core/domain/model/job"
	"courierdocs/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// GetByNumber retrieves a job by its business number.
func (r *GormJobRepository) GetByNumber(ctx context.Context, number string) (*job.Job, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("job number")
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", number)
		}
		return nil, err
	}

	return toDomain(dto)
}
