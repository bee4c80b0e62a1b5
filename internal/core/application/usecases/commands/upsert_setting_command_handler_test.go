package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courierdocs/internal/core/application/usecases/commands"
)

func TestUpsertSettingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpsertSettingCommand("disclaimer", "E&OE.")

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, "disclaimer", "E&OE.").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertSettingCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpsertSettingCommandHandler_Handle_UpsertError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpsertSettingCommand("disclaimer", "E&OE.")

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, "disclaimer", "E&OE.").Return(errors.New("upsert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertSettingCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestUpsertSettingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpsertSettingCommand{} // not constructed properly
	factory := new(MockSettingsUoWFactory)
	h := commands.NewUpsertSettingCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
