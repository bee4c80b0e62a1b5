package commands

import (
	"errors"

	"courierdocs/internal/pkg/guard"
)

var (
	ErrUpsertSettingCommandIsNotConstructed = errors.New(
		"UpsertSettingCommand must be created via NewUpsertSettingCommand constructor",
	)
	ErrSettingKeyIsRequired = errors.New("setting key is required")
)

// UpsertSettingCommand represents a request to store a document setting, e.g.
// the disclaimer text stamped onto every generated page. An empty value is
// allowed: it clears the setting's effect without deleting the row.
type UpsertSettingCommand struct { //nolint:recvcheck //using for validation
	key   string
	value string

	guard guard.ConstructorGuard
}

// NewUpsertSettingCommand creates a command to store a setting value.
func NewUpsertSettingCommand(key, value string) (UpsertSettingCommand, error) {
	cmd := UpsertSettingCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setKey(key); err != nil {
		return UpsertSettingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpsertSettingCommandIsNotConstructed if validation fails.
func (c UpsertSettingCommand) Validate() error {
	return c.guard.Validate(ErrUpsertSettingCommandIsNotConstructed)
}

// Key returns the setting key.
func (c UpsertSettingCommand) Key() string {
	return c.key
}

// Value returns the setting value.
func (c UpsertSettingCommand) Value() string {
	return c.value
}

func (c *UpsertSettingCommand) setKey(key string) error {
	if key == "" {
		return ErrSettingKeyIsRequired
	}

	c.key = key
	return nil
}
