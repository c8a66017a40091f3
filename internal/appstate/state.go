// Package appstate holds the client's application state: the cached
// settings, categories, and transactions the screens render from.
// State values are immutable; update functions return a new State
// instead of mutating shared references.
package appstate

import (
	"time"

	"paisa/internal/models"
	"paisa/internal/report"
)

// State is one immutable snapshot of everything the UI renders.
type State struct {
	Settings     models.Settings
	Categories   []models.Category
	Transactions []models.Transaction

	// Stale is true when the last refresh failed and the data shown
	// comes from the local snapshot cache.
	Stale bool
}

// WithSettings returns a copy of the state with new settings.
func (s State) WithSettings(settings models.Settings) State {
	s.Settings = settings
	return s
}

// WithCategories returns a copy of the state with a new category list.
func (s State) WithCategories(categories []models.Category) State {
	s.Categories = categories
	return s
}

// WithTransactions returns a copy of the state with a new transaction list.
func (s State) WithTransactions(transactions []models.Transaction) State {
	s.Transactions = transactions
	return s
}

// PrependTransaction returns a copy of the state with t at the front of
// the list, matching the server's most-recent-first ordering.
func (s State) PrependTransaction(t models.Transaction) State {
	next := make([]models.Transaction, 0, len(s.Transactions)+1)
	next = append(next, t)
	next = append(next, s.Transactions...)
	s.Transactions = next
	return s
}

// ReplaceTransaction returns a copy of the state with the transaction
// of the same ID replaced. Unknown IDs leave the state unchanged.
func (s State) ReplaceTransaction(t models.Transaction) State {
	next := make([]models.Transaction, len(s.Transactions))
	copy(next, s.Transactions)
	for i := range next {
		if next[i].ID == t.ID {
			next[i] = t
			break
		}
	}
	s.Transactions = next
	return s
}

// RemoveTransaction returns a copy of the state without the given
// transaction.
func (s State) RemoveTransaction(transactionID string) State {
	next := make([]models.Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if t.ID != transactionID {
			next = append(next, t)
		}
	}
	s.Transactions = next
	return s
}

// CategoryNames lists the known category names, in list order. The
// voice parser matches utterances against these.
func (s State) CategoryNames() []string {
	names := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		names[i] = c.Name
	}
	return names
}

// Totals computes income/expense/net for the window.
func (s State) Totals(w report.Window, now time.Time) report.Totals {
	return report.Sum(report.Filter(s.Transactions, w, now))
}

// Breakdown computes the expense category breakdown for the window.
func (s State) Breakdown(w report.Window, mode report.SortMode, now time.Time) []report.CategoryBreakdown {
	return report.Breakdown(report.Filter(s.Transactions, w, now), mode)
}

// DailySeries computes the zero-filled daily expense series.
func (s State) DailySeries(days int, now time.Time) []report.DayBucket {
	return report.DailySeries(s.Transactions, days, now)
}

// MonthlySeries computes per-month income/expense sums for the window.
func (s State) MonthlySeries(w report.Window, now time.Time) []report.MonthBucket {
	return report.MonthlySeries(report.Filter(s.Transactions, w, now))
}
