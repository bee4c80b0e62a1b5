package ports

import "context"

// SettingsRepository defines the persistence contract for document settings,
// a small key-value store holding the disclaimer text and logo reference.
type SettingsRepository interface {
	// Get retrieves a single setting value by key.
	// Returns an ObjectNotFoundError when the key is not present.
	Get(ctx context.Context, key string) (string, error)

	// GetAll retrieves every stored setting.
	GetAll(ctx context.Context) (map[string]string, error)

	// Upsert stores a setting value, overwriting any previous value.
	Upsert(ctx context.Context, key, value string) error
}
