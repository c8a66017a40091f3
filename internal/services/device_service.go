package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

// deviceService handles device registration.
type deviceService struct {
	db *gorm.DB
}

// NewDeviceService creates a new DeviceServicer.
func NewDeviceService(db *gorm.DB) DeviceServicer {
	return &deviceService{db: db}
}

// RegisterDevice records a new installation.
func (s *deviceService) RegisterDevice(name, platform string) (*models.Device, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "device name is required")
	}
	if platform == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "platform is required")
	}

	device := &models.Device{Name: name, Platform: platform}
	if err := s.db.Create(device).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return device, nil
}

// Touch updates the device's last-seen timestamp.
func (s *deviceService) Touch(deviceID string) error {
	now := time.Now()
	result := s.db.Model(&models.Device{}).
		Where("id = ?", deviceID).
		Update("last_seen_at", now)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDeviceNotFound
	}
	return nil
}
