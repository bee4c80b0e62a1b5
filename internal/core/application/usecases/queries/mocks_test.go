package queries_test

import (
	"context"

	"courierdocs/internal/core/docgen"
	"courierdocs/internal/core/domain/model/deliverynote"
	"courierdocs/internal/core/domain/model/job"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
)

// mockAggregateTracker is a no-op tracker for repository instances used in tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// MockShipmentRepository is a testify mock for ports.ShipmentRepository.
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

// MockNoteRepository is a testify mock for ports.DeliveryNoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverynote.DeliveryNote), args.Error(1)
}

// MockJobRepository is a testify mock for ports.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetByNumber(ctx context.Context, number string) (*job.Job, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

// MockSettingsRepository is a testify mock for ports.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// stubRenderer implements ports.DocumentRenderer with a fixed glyph width and a
// canned render result. It records the pages it was asked to render.
type stubRenderer struct {
	content       []byte
	renderErr     error
	renderedPages []docgen.Page
}

func (r *stubRenderer) MeasureText(text string, _ docgen.Font) float64 {
	return float64(len(text)) * 6
}

func (r *stubRenderer) Render(pages []docgen.Page) ([]byte, error) {
	r.renderedPages = pages
	if r.renderErr != nil {
		return nil, r.renderErr
	}
	return r.content, nil
}
