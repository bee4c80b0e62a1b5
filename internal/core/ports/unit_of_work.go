package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction started by Begin().
	ShipmentRepository() ShipmentRepository

	// DeliveryNoteRepository returns a DeliveryNoteRepository bound to the
	// current transaction started by Begin().
	DeliveryNoteRepository() DeliveryNoteRepository

	// SequenceRepository returns a SequenceRepository bound to the current
	// transaction. Counter locks taken by Next are held until Commit or
	// Rollback.
	SequenceRepository() SequenceRepository

	// SettingsRepository returns a SettingsRepository bound to the current
	// transaction.
	SettingsRepository() SettingsRepository
}
