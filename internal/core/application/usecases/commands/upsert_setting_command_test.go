package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierdocs/internal/core/application/usecases/commands"
)

func TestNewUpsertSettingCommand(t *testing.T) {
	cmd, err := commands.NewUpsertSettingCommand("disclaimer", "E&OE.")
	require.NoError(t, err)

	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "disclaimer", cmd.Key())
	assert.Equal(t, "E&OE.", cmd.Value())
}

func TestNewUpsertSettingCommand_EmptyValueAllowed(t *testing.T) {
	cmd, err := commands.NewUpsertSettingCommand("disclaimer", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Value())
}

func TestNewUpsertSettingCommand_EmptyKeyRejected(t *testing.T) {
	_, err := commands.NewUpsertSettingCommand("", "value")
	assert.ErrorIs(t, err, commands.ErrSettingKeyIsRequired)
}

func TestUpsertSettingCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpsertSettingCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpsertSettingCommandIsNotConstructed)
}
