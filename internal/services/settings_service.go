package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// settingsService manages the per-installation settings singleton.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the settings row, or the defaults when nothing
// has been written yet.
func (s *settingsService) GetSettings() (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultSettings()
			return &defaults, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings upserts the singleton row with the provided fields.
func (s *settingsService) UpdateSettings(update SettingsUpdate) (*models.Settings, error) {
	if update.DefaultCurrency != nil {
		switch *update.DefaultCurrency {
		case models.CurrencyINR, models.CurrencyUSD:
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported currency")
		}
	}

	var settings models.Settings
	err := s.db.First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.DefaultSettings()
		applySettingsUpdate(&settings, update)
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	applySettingsUpdate(&settings, update)
	if err := s.db.Save(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

func applySettingsUpdate(settings *models.Settings, update SettingsUpdate) {
	if update.DefaultCurrency != nil {
		settings.DefaultCurrency = *update.DefaultCurrency
	}
	if update.DarkMode != nil {
		settings.DarkMode = *update.DarkMode
	}
	if update.VoiceInputEnabled != nil {
		settings.VoiceInputEnabled = *update.VoiceInputEnabled
	}
	if update.SyncEnabled != nil {
		settings.SyncEnabled = *update.SyncEnabled
	}
}
