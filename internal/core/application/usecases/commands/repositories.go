// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courierdocs/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// NoteRepoFactory provides access to the delivery note repository within a transaction.
	NoteRepoFactory interface {
		DeliveryNoteRepository() ports.DeliveryNoteRepository
	}

	// SequenceRepoFactory provides access to the sequence repository within a transaction.
	// Identifier allocation must share the transaction of the dependent insert so a
	// rolled-back write also rolls back the counter increment.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// ShipmentUoW manages transactions for shipment operations. Creation also
	// allocates a tracking number, so the sequence repository rides the same
	// transaction.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		SequenceRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// NoteUoW manages transactions for delivery note operations, including
	// note-number allocation.
	NoteUoW interface {
		TxManager
		NoteRepoFactory
		SequenceRepoFactory
	}

	// NoteUoWFactory creates new delivery note unit of work instances.
	NoteUoWFactory interface {
		Create() NoteUoW
	}

	// SettingsUoW manages transactions for settings writes.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
