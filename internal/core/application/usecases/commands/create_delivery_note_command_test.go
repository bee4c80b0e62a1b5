package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierdocs/internal/core/application/usecases/commands"
	"courierdocs/internal/core/domain/model/kernel"
)

func validItemData() []commands.ItemData {
	return []commands.ItemData{{Quantity: "2", Description: "Hydraulic hose assembly", Price: "125.00"}}
}

func noteDate() time.Time {
	return time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
}

func TestNewCreateDeliveryNoteCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryNoteCommand(
		id, "Acme Ltd", noteDate(), "1 Factory Rd, Johannesburg", validItemData(),
		"S. Dlamini", "083 555 0199", "J-2041", "CE-88")
	require.NoError(t, err)

	assert.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.NoteID())
	assert.Equal(t, "Acme Ltd", cmd.ClientName())
	assert.Equal(t, noteDate(), cmd.Date())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, "S. Dlamini", cmd.ContactPerson())
	assert.Equal(t, "J-2041", cmd.JobNumber())
}

func TestNewCreateDeliveryNoteCommand_Validation(t *testing.T) {
	tests := []struct {
		name       string
		clientName string
		address    string
		items      []commands.ItemData
		wantErr    error
	}{
		{
			name:    "missing client name",
			address: "1 Factory Rd",
			items:   validItemData(),
			wantErr: commands.ErrClientNameIsRequired,
		},
		{
			name:       "missing address",
			clientName: "Acme Ltd",
			items:      validItemData(),
			wantErr:    commands.ErrAddressIsRequired,
		},
		{
			name:       "no items",
			clientName: "Acme Ltd",
			address:    "1 Factory Rd",
			wantErr:    commands.ErrItemsAreRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateDeliveryNoteCommand(
				kernel.NewUUID(), tt.clientName, noteDate(), tt.address, tt.items, "", "", "", "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateDeliveryNoteCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateDeliveryNoteCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryNoteCommandIsNotConstructed)
}
