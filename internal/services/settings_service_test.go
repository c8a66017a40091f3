package services

import (
	"testing"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestGetSettings(t *testing.T) {
	t.Run("returns_defaults_when_unset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		settings, err := svc.GetSettings()
		testutil.AssertNoError(t, err)

		if settings.DefaultCurrency != models.CurrencyINR {
			t.Errorf("expected INR default, got %q", settings.DefaultCurrency)
		}
		if settings.DarkMode {
			t.Error("dark mode must default to off")
		}
		if !settings.VoiceInputEnabled {
			t.Error("voice input must default to on")
		}
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("first_update_creates_the_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		darkMode := true
		settings, err := svc.UpdateSettings(SettingsUpdate{DarkMode: &darkMode})
		testutil.AssertNoError(t, err)
		if !settings.DarkMode {
			t.Error("expected dark mode on")
		}

		// Unspecified fields keep their defaults.
		if settings.DefaultCurrency != models.CurrencyINR {
			t.Errorf("expected INR default, got %q", settings.DefaultCurrency)
		}

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Settings{}).Count(&count).Error)
		if count != 1 {
			t.Errorf("expected a single settings row, got %d", count)
		}
	})

	t.Run("subsequent_updates_are_partial", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		currency := models.CurrencyUSD
		_, err := svc.UpdateSettings(SettingsUpdate{DefaultCurrency: &currency})
		testutil.AssertNoError(t, err)

		darkMode := true
		settings, err := svc.UpdateSettings(SettingsUpdate{DarkMode: &darkMode})
		testutil.AssertNoError(t, err)

		if settings.DefaultCurrency != models.CurrencyUSD {
			t.Errorf("earlier update must survive, got %q", settings.DefaultCurrency)
		}
		if !settings.DarkMode {
			t.Error("expected dark mode on")
		}

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Settings{}).Count(&count).Error)
		if count != 1 {
			t.Errorf("updates must not create extra rows, got %d", count)
		}
	})

	t.Run("rejects_unsupported_currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		currency := "EUR"
		_, err := svc.UpdateSettings(SettingsUpdate{DefaultCurrency: &currency})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
