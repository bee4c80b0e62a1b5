package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courierdocs/internal/core/application/usecases/commands"
	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/core/domain/model/sequence"
	"courierdocs/internal/core/domain/model/shipment"
	"courierdocs/internal/pkg/errs"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), validSender(), validRecipient(), validElementData(), "", "", "")

	repo := new(MockShipmentRepository)
	seqRepo := new(MockSequenceRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceRepository").Return(seqRepo).Once(),
		seqRepo.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(1001), nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	seqRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_AllocatedNumberFlowsIntoAggregate(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), validSender(), validRecipient(), validElementData(), "", "", "")

	repo := new(MockShipmentRepository)
	seqRepo := new(MockSequenceRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SequenceRepository").Return(seqRepo).Once()
	seqRepo.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(1042), nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.MatchedBy(func(s *shipment.Shipment) bool {
		return s.TrackingNumber() == "T1042"
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnceOnConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), validSender(), validRecipient(), validElementData(), "", "", "")

	conflict := errs.NewConflictError("trackingNumber", "T1001")

	firstRepo := new(MockShipmentRepository)
	firstSeq := new(MockSequenceRepository)
	firstUoW := new(MockShipmentUoW)
	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("SequenceRepository").Return(firstSeq).Once(),
		firstSeq.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(1001), nil).Once(),
		firstUoW.On("ShipmentRepository").Return(firstRepo).Once(),
		firstRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(conflict).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	secondRepo := new(MockShipmentRepository)
	secondSeq := new(MockSequenceRepository)
	secondUoW := new(MockShipmentUoW)
	mock.InOrder(
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("SequenceRepository").Return(secondSeq).Once(),
		secondSeq.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(1002), nil).Once(),
		secondUoW.On("ShipmentRepository").Return(secondRepo).Once(),
		secondRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	firstUoW.AssertExpectations(t)
	secondUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_SecondConflictSurfaces(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), validSender(), validRecipient(), validElementData(), "", "", "")

	conflict := errs.NewConflictError("trackingNumber", "T1001")

	factory := new(MockShipmentUoWFactory)
	for i := 0; i < 2; i++ {
		repo := new(MockShipmentRepository)
		seqRepo := new(MockSequenceRepository)
		uow := new(MockShipmentUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("SequenceRepository").Return(seqRepo).Once()
		seqRepo.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(1001), nil).Once()
		uow.On("ShipmentRepository").Return(repo).Once()
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(conflict).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory.On("Create").Return(uow).Once()
	}

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_NextError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), validSender(), validRecipient(), validElementData(), "", "", "")

	seqRepo := new(MockSequenceRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceRepository").Return(seqRepo).Once(),
		seqRepo.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(0), errors.New("next error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_BadCourierCharge(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), validSender(), validRecipient(), validElementData(), "", "", "not-a-number")
	require.NoError(t, err)

	seqRepo := new(MockSequenceRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SequenceRepository").Return(seqRepo).Once()
	seqRepo.On("Next", mock.Anything, sequence.ShipmentCounter).Return(int64(1001), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}
