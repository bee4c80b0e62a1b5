package commands

import (
	"context"
)

// UpsertSettingCommandHandler handles document setting writes.
type UpsertSettingCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpsertSettingCommandHandler creates a handler for setting upsert operations.
// Requires a SettingsUoWFactory for transactional persistence.
func NewUpsertSettingCommandHandler(uowFactory SettingsUoWFactory) UpsertSettingCommandHandler {
	return UpsertSettingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the setting upsert command.
func (h *UpsertSettingCommandHandler) Handle(ctx context.Context, cmd UpsertSettingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().Upsert(ctx, cmd.Key(), cmd.Value()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
