// Package report derives read-only summaries from in-memory transaction
// lists. Every function is pure and total: empty input produces zeroed or
// empty results, never an error. Both the analytics endpoints and the
// client application state use this package, so there is a single
// aggregation implementation to keep in sync.
package report

import (
	"time"

	"paisa/internal/models"
)

type windowKind int

const (
	windowAll windowKind = iota
	windowDays
	windowMonth
)

// Window is a time range used to filter transactions for a report:
// a trailing number of days, a calendar month, or everything.
type Window struct {
	kind  windowKind
	days  int
	year  int
	month time.Month
}

// All returns a window that performs no filtering.
func All() Window {
	return Window{kind: windowAll}
}

// LastDays returns a window covering today and the n-1 preceding
// calendar days, lower bound inclusive.
func LastDays(n int) Window {
	return Window{kind: windowDays, days: n}
}

// Month returns a window matching a specific calendar month.
func Month(year int, month time.Month) Window {
	return Window{kind: windowMonth, year: year, month: month}
}

// Contains reports whether the date falls inside the window, with "now"
// anchoring relative windows.
func (w Window) Contains(d models.Date, now time.Time) bool {
	switch w.kind {
	case windowDays:
		today := models.DateOf(now)
		lower := today.AddDate(0, 0, -(w.days - 1))
		return !d.Before(lower) && !d.After(today.Time)
	case windowMonth:
		return d.Year() == w.year && d.Month() == w.month
	default:
		return true
	}
}

// Filter retains the transactions whose date falls inside the window.
func Filter(txns []models.Transaction, w Window, now time.Time) []models.Transaction {
	if w.kind == windowAll {
		return txns
	}
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if w.Contains(t.TransactionDate, now) {
			out = append(out, t)
		}
	}
	return out
}
