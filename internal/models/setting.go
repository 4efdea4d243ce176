package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingWebhookURL is the key of the assistant webhook URL setting.
const SettingWebhookURL = "webhook_url"

// Setting is a key/value pair of user configuration.
type Setting struct {
	DefaultModel
	Key   string `gorm:"uniqueIndex"`
	Value string
}

func (s *Setting) BeforeSave(_ *gorm.DB) error {
	s.Key = strings.TrimSpace(s.Key)
	s.Value = strings.TrimSpace(s.Value)

	return nil
}

func (s *Setting) AfterSave(_ *gorm.DB) error {
	if s.Key == "" {
		return ErrSettingKeyEmpty
	}

	return nil
}

func (Setting) Export() (json.RawMessage, error) {
	return export[Setting]()
}

// GetSetting returns the value for a key. ok is false when the
// key has never been set.
func GetSetting(db *gorm.DB, key string) (value string, ok bool, err error) {
	var setting Setting

	tx := db.Where(&Setting{Key: key}).Limit(1).Find(&setting)
	if tx.Error != nil {
		return "", false, tx.Error
	}

	return setting.Value, tx.RowsAffected > 0, nil
}

// SetSetting creates or updates the value for a key.
func SetSetting(db *gorm.DB, key, value string) (Setting, error) {
	var setting Setting
	value = strings.TrimSpace(value)

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Setting{Key: key}).Limit(1).Find(&setting).Error
		if err != nil {
			return err
		}

		setting.Key = key
		setting.Value = value

		if setting.ID == uuid.Nil {
			return tx.Create(&setting).Error
		}

		return tx.Model(&setting).Select("Value").Updates(Setting{Value: value}).Error
	})
	if err != nil {
		return Setting{}, err
	}

	return setting, nil
}
