package appstate

import (
	"context"
	"errors"

	"paisa/internal/cache"
	"paisa/internal/client"
	"paisa/internal/logger"
	"paisa/internal/models"
	"paisa/internal/voice"
)

// Store orchestrates the API client and the local snapshot cache and
// owns the current State. Operations run to completion within one UI
// update cycle; the store is not safe for concurrent use and does not
// need to be.
type Store struct {
	api   *client.Client
	cache *cache.Store
	state State
}

// NewStore creates a store with empty state and default settings.
func NewStore(api *client.Client, snapshots *cache.Store) *Store {
	return &Store{
		api:   api,
		cache: snapshots,
		state: State{Settings: models.DefaultSettings()},
	}
}

// State returns the current immutable state snapshot.
func (s *Store) State() State {
	return s.state
}

// Refresh fetches settings, categories, and transactions from the API
// and replaces the state and the cached snapshots. On network failure
// the state is rebuilt from the last cached snapshots, marked stale,
// and the error is returned so the UI can surface an alert.
func (s *Store) Refresh(ctx context.Context) error {
	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		return s.fallback(err)
	}
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return s.fallback(err)
	}
	transactions, err := s.api.ListTransactions(ctx, 0)
	if err != nil {
		return s.fallback(err)
	}

	s.state = State{
		Settings:     *settings,
		Categories:   categories,
		Transactions: transactions,
	}
	s.snapshot()
	return nil
}

// fallback rebuilds state from cached snapshots after a failed fetch.
// Keys that miss keep their previous in-memory value.
func (s *Store) fallback(cause error) error {
	next := s.state
	next.Stale = true

	var settings models.Settings
	if err := s.cache.Get(cache.KeySettings, &settings); err == nil {
		next.Settings = settings
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Get().Warnw("settings snapshot unreadable", "error", err)
	}

	var categories []models.Category
	if err := s.cache.Get(cache.KeyCategories, &categories); err == nil {
		next.Categories = categories
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Get().Warnw("categories snapshot unreadable", "error", err)
	}

	var transactions []models.Transaction
	if err := s.cache.Get(cache.KeyTransactions, &transactions); err == nil {
		next.Transactions = transactions
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Get().Warnw("transactions snapshot unreadable", "error", err)
	}

	s.state = next
	return cause
}

// snapshot writes the current state to the cache. Snapshot failures are
// logged, not surfaced: the authoritative copy lives on the server.
func (s *Store) snapshot() {
	if err := s.cache.Put(cache.KeySettings, s.state.Settings); err != nil {
		logger.Get().Warnw("settings snapshot failed", "error", err)
	}
	if err := s.cache.Put(cache.KeyCategories, s.state.Categories); err != nil {
		logger.Get().Warnw("categories snapshot failed", "error", err)
	}
	if err := s.cache.Put(cache.KeyTransactions, s.state.Transactions); err != nil {
		logger.Get().Warnw("transactions snapshot failed", "error", err)
	}
}

// AddTransaction creates a transaction on the server and, on success,
// prepends it to the state. On failure prior state is left untouched.
func (s *Store) AddTransaction(ctx context.Context, draft client.TransactionDraft) (*models.Transaction, error) {
	created, err := s.api.CreateTransaction(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.state = s.state.PrependTransaction(*created)
	s.snapshot()
	return created, nil
}

// UpdateTransaction applies a partial update on the server and swaps
// the updated row into the state.
func (s *Store) UpdateTransaction(ctx context.Context, transactionID string, patch client.TransactionPatch) (*models.Transaction, error) {
	updated, err := s.api.UpdateTransaction(ctx, transactionID, patch)
	if err != nil {
		return nil, err
	}
	s.state = s.state.ReplaceTransaction(*updated)
	s.snapshot()
	return updated, nil
}

// DeleteTransaction removes a transaction on the server and from the state.
func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.api.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}
	s.state = s.state.RemoveTransaction(transactionID)
	s.snapshot()
	return nil
}

// AddCategory creates a custom category and appends it to the state.
func (s *Store) AddCategory(ctx context.Context, name, color, icon string) (*models.Category, error) {
	created, err := s.api.CreateCategory(ctx, name, color, icon)
	if err != nil {
		return nil, err
	}
	next := make([]models.Category, 0, len(s.state.Categories)+1)
	next = append(next, s.state.Categories...)
	next = append(next, *created)
	s.state = s.state.WithCategories(next)
	s.snapshot()
	return created, nil
}

// DeleteCategory deletes a custom category. The server reassigns the
// category's transactions to the fallback category, so both lists are
// refetched afterwards.
func (s *Store) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.api.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return s.fallback(err)
	}
	transactions, err := s.api.ListTransactions(ctx, 0)
	if err != nil {
		return s.fallback(err)
	}
	s.state = s.state.WithCategories(categories).WithTransactions(transactions)
	s.state.Stale = false
	s.snapshot()
	return nil
}

// UpdateSettings applies a partial settings update on the server.
func (s *Store) UpdateSettings(ctx context.Context, patch client.SettingsPatch) (*models.Settings, error) {
	updated, err := s.api.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, err
	}
	s.state = s.state.WithSettings(*updated)
	s.snapshot()
	return updated, nil
}

// SuggestFromVoice captures one utterance and parses it into a
// transaction suggestion. The suggestion is never persisted here; the
// user confirms or edits it first.
func (s *Store) SuggestFromVoice(ctx context.Context, recognizer voice.Recognizer) (voice.Suggestion, error) {
	text, err := recognizer.Recognize(ctx)
	if err != nil {
		return voice.Suggestion{}, err
	}
	return voice.Parse(text, s.state.CategoryNames()), nil
}
