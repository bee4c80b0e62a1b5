package sequencerepo

import (
	"context"

	"courierdocs/internal/core/domain/model/sequence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSequenceRepository implements SequenceRepository using GORM.
//
// It must run on a transaction-bound connection: Next takes a SELECT ... FOR
// UPDATE lock on the counter row, and the lock is only released when the
// surrounding transaction commits or rolls back.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next increments the named counter and returns the new value.
//
// A counter that does not exist yet is seeded at its default start before
// being locked, so the first allocation on a fresh counter returns the start
// value plus one. Two transactions racing on the seed are safe: the insert
// does nothing on conflict and both proceed to contend for the row lock.
func (r *GormSequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	fresh, err := sequence.NewCounter(name)
	if err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)

	seed := fromDomain(fresh)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var dto CounterDTO
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "name = ?", name).Error; err != nil {
		return 0, err
	}

	counter, err := sequence.RestoreCounter(dto.Name, dto.CurrentNumber)
	if err != nil {
		return 0, err
	}

	next := counter.Next()
	if err := db.Model(&CounterDTO{}).
		Where("name = ?", counter.Name()).
		Update("current_number", next).Error; err != nil {
		return 0, err
	}

	return next, nil
}
