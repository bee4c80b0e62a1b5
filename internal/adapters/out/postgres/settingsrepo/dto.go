// Package settingsrepo persists document settings, a flat key-value store for
// values such as the waybill disclaimer text and the logo reference.
package settingsrepo

// SettingDTO represents one setting row.
type SettingDTO struct {
	Key   string `gorm:"type:varchar(128);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

// TableName specifies the database table name for setting rows.
func (SettingDTO) TableName() string {
	return "settings"
}
