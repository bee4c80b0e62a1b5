// Package postgres provides the GORM-based Unit of Work implementation and its
// repository packages. A unit of work spans one business transaction: the
// repositories obtained from it run on the same database transaction, so a
// counter allocation and the insert depending on it commit or roll back
// together.
package postgres

import (
	"context"

	"courierdocs/internal/adapters/out/postgres/noterepo"
	"courierdocs/internal/adapters/out/postgres/sequencerepo"
	"courierdocs/internal/adapters/out/postgres/settingsrepo"
	"courierdocs/internal/adapters/out/postgres/shipmentrepo"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// and tracks aggregate changes made within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an instance
// with an open transaction is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// DeliveryNoteRepository returns a delivery note repository bound to the
// current transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	return noterepo.NewGormDeliveryNoteRepository(uow.conn(), uow)
}

// SequenceRepository returns a sequence repository bound to the current
// transaction. Counter row locks taken by Next are held until Commit or Rollback.
func (uow *GormUnitOfWork) SequenceRepository() ports.SequenceRepository {
	return sequencerepo.NewGormSequenceRepository(uow.conn())
}

// SettingsRepository returns a settings repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it when aggregates are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
