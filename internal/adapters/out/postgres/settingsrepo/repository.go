package settingsrepo

import (
	"context"
	"errors"

	"courierdocs/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves a single setting value by key.
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("setting", key)
		}
		return "", err
	}

	return dto.Value, nil
}

// GetAll retrieves every stored setting as a key-value map.
func (r *GormSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var dtos []SettingDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(dtos))
	for _, dto := range dtos {
		settings[dto.Key] = dto.Value
	}

	return settings, nil
}

// Upsert stores a setting value, overwriting any previous value for the key.
func (r *GormSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	dto := SettingDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}
