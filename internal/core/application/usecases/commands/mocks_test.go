package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"courierdocs/internal/core/application/usecases/commands"
	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"
	"courierdocs/internal/core/ports"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockNoteRepository struct{ mock.Mock }

func (m *MockNoteRepository) Add(ctx context.Context, n *deliverynote.DeliveryNote) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoteRepository) Get(_ context.Context, _ kernel.UUID) (*deliverynote.DeliveryNote, error) {
	return nil, errors.New("not implemented in mock")
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(_ context.Context, _ string) (string, error) {
	return "", errors.New("not implemented in mock")
}

func (m *MockSettingsRepository) GetAll(_ context.Context) (map[string]string, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockNoteUoW struct{ mock.Mock }

func (m *MockNoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNoteUoW) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryNoteRepository)
}

func (m *MockNoteUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockNoteUoWFactory struct{ mock.Mock }

func (m *MockNoteUoWFactory) Create() commands.NoteUoW {
	args := m.Called()
	return args.Get(0).(commands.NoteUoW)
}

type MockSettingsUoW struct{ mock.Mock }

func (m *MockSettingsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}
