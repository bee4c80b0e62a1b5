package noterepo

import (
	"context"
	"errors"

	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormDeliveryNoteRepository implements DeliveryNoteRepository using GORM.
type GormDeliveryNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryNoteRepository creates a new GORM delivery note repository.
func NewGormDeliveryNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery note to the database. A uniqueness violation on the
// note number surfaces as a ConflictError so the caller can reallocate the
// number and retry.
func (r *GormDeliveryNoteRepository) Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("noteNumber", aggregate.NoteNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery note by ID with its items in capture order.
func (r *GormDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryNoteDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryNote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505),
// regardless of whether the driver or GORM's error translation reported it.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
