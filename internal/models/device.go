package models

import "time"

// Device represents a registered installation of the mobile client.
// Registration issues the bearer token used for all other endpoints.
type Device struct {
	Base
	Name       string     `gorm:"not null" json:"name"`
	Platform   string     `gorm:"not null" json:"platform"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}
