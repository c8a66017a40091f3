package models

// Settings holds the per-installation preferences. Exactly one row
// exists; reads fall back to defaults when it has not been written yet.
type Settings struct {
	Base
	DefaultCurrency   string `gorm:"not null;default:INR" json:"default_currency"`
	DarkMode          bool   `gorm:"default:false" json:"dark_mode"`
	VoiceInputEnabled bool   `gorm:"default:true" json:"voice_input_enabled"`
	// SyncEnabled is carried for the client but multi-device sync is
	// not implemented; the flag is inert.
	SyncEnabled bool `gorm:"default:false" json:"sync_enabled"`
}

// DefaultSettings returns the settings used before the first write.
func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency:   CurrencyINR,
		DarkMode:          false,
		VoiceInputEnabled: true,
		SyncEnabled:       false,
	}
}
