package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	t.Run("marshals_as_bare_date", func(t *testing.T) {
		d := NewDate(2025, time.March, 15)
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `"2025-03-15"` {
			t.Errorf("expected bare date, got %s", data)
		}
	})

	t.Run("unmarshals_bare_date", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"2025-03-15"`), &d); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if d.String() != "2025-03-15" {
			t.Errorf("expected 2025-03-15, got %s", d)
		}
	})

	t.Run("unmarshals_rfc3339_timestamp", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"2025-03-15T18:30:00Z"`), &d); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		// Only the calendar date survives.
		if d.String() != "2025-03-15" {
			t.Errorf("expected 2025-03-15, got %s", d)
		}
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestDateScan(t *testing.T) {
	t.Run("scans_time", func(t *testing.T) {
		var d Date
		if err := d.Scan(time.Date(2025, time.March, 15, 18, 30, 0, 0, time.UTC)); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2025-03-15" {
			t.Errorf("expected 2025-03-15, got %s", d)
		}
	})

	t.Run("scans_string", func(t *testing.T) {
		var d Date
		if err := d.Scan("2025-03-15 00:00:00+00:00"); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2025-03-15" {
			t.Errorf("expected 2025-03-15, got %s", d)
		}
	})
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC))
	if d != NewDate(2025, time.March, 15) {
		t.Errorf("expected the time component to be dropped, got %v", d)
	}
}
