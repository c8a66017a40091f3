package appstate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"paisa/internal/cache"
	"paisa/internal/client"
	"paisa/internal/models"
	"paisa/internal/voice"
)

// fakeAPI is a minimal in-memory server covering the endpoints the
// store uses. Setting down makes every request fail.
type fakeAPI struct {
	settings     models.Settings
	categories   []models.Category
	transactions []models.Transaction
	down         bool
}

func newFakeAPI() *fakeAPI {
	groceries := models.Category{Name: "Groceries"}
	groceries.ID = "cat-groceries"

	tx := models.Transaction{
		Amount:          decimal.NewFromInt(100),
		CategoryID:      groceries.ID,
		CategoryName:    groceries.Name,
		TransactionType: models.TransactionTypeExpense,
		Currency:        models.CurrencyINR,
		TransactionDate: models.NewDate(2025, 3, 15),
	}
	tx.ID = "tx-1"

	return &fakeAPI{
		settings:     models.DefaultSettings(),
		categories:   []models.Category{groceries},
		transactions: []models.Transaction{tx},
	}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		if f.down {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"settings": f.settings})
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if f.down {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"categories": f.categories})
	})
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if f.down {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		switch r.Method {
		case http.MethodPost:
			var draft client.TransactionDraft
			_ = json.NewDecoder(r.Body).Decode(&draft)
			tx := models.Transaction{
				Amount:          draft.Amount,
				CategoryID:      draft.CategoryID,
				TransactionType: draft.TransactionType,
				TransactionDate: draft.TransactionDate,
			}
			tx.ID = "tx-created"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"transaction": tx})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"transactions": f.transactions})
		}
	})
	mux.HandleFunc("/api/transactions/", func(w http.ResponseWriter, r *http.Request) {
		if f.down {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"message": "Transaction deleted successfully"})
	})
	return mux
}

func newTestStore(t *testing.T, api *fakeAPI) (*Store, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	snapshots, err := cache.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	return NewStore(client.New(server.URL, "token", nil), snapshots), server
}

func TestRefresh(t *testing.T) {
	t.Run("populates_state_from_the_api", func(t *testing.T) {
		api := newFakeAPI()
		store, _ := newTestStore(t, api)

		if err := store.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}

		state := store.State()
		if state.Stale {
			t.Error("fresh data must not be stale")
		}
		if len(state.Categories) != 1 || state.Categories[0].Name != "Groceries" {
			t.Errorf("unexpected categories: %+v", state.Categories)
		}
		if len(state.Transactions) != 1 || state.Transactions[0].ID != "tx-1" {
			t.Errorf("unexpected transactions: %+v", state.Transactions)
		}
	})

	t.Run("falls_back_to_snapshots_when_the_api_is_down", func(t *testing.T) {
		api := newFakeAPI()
		store, _ := newTestStore(t, api)

		// Prime the snapshots with one good refresh.
		if err := store.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}

		api.down = true
		err := store.Refresh(context.Background())
		if err == nil {
			t.Fatal("expected the refresh error to surface")
		}

		state := store.State()
		if !state.Stale {
			t.Error("fallback data must be marked stale")
		}
		if len(state.Transactions) != 1 || state.Transactions[0].ID != "tx-1" {
			t.Errorf("expected cached transactions, got %+v", state.Transactions)
		}
	})

	t.Run("recovers_after_the_api_returns", func(t *testing.T) {
		api := newFakeAPI()
		store, _ := newTestStore(t, api)

		api.down = true
		_ = store.Refresh(context.Background())
		if !store.State().Stale {
			t.Fatal("expected stale state while down")
		}

		api.down = false
		if err := store.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh failed: %v", err)
		}
		if store.State().Stale {
			t.Error("state must be fresh again")
		}
	})
}

func TestAddTransaction(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(t, api)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	created, err := store.AddTransaction(context.Background(), client.TransactionDraft{
		Amount:          decimal.NewFromInt(250),
		CategoryID:      "cat-groceries",
		TransactionType: models.TransactionTypeExpense,
		TransactionDate: models.NewDate(2025, 3, 16),
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	state := store.State()
	if len(state.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(state.Transactions))
	}
	if state.Transactions[0].ID != created.ID {
		t.Error("new transactions must be prepended")
	}
}

func TestDeleteTransaction(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(t, api)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if err := store.DeleteTransaction(context.Background(), "tx-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(store.State().Transactions) != 0 {
		t.Errorf("expected empty list, got %d", len(store.State().Transactions))
	}
}

func TestSuggestFromVoice(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(t, api)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	recognizer := voice.RecognizerFunc(func(ctx context.Context) (string, error) {
		return "Spent 500 rupees on groceries", nil
	})

	suggestion, err := store.SuggestFromVoice(context.Background(), recognizer)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if suggestion.Amount == nil || !suggestion.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected amount 500, got %v", suggestion.Amount)
	}
	if suggestion.CategoryName != "Groceries" {
		t.Errorf("expected Groceries, got %q", suggestion.CategoryName)
	}
	if suggestion.Type != models.TransactionTypeExpense {
		t.Errorf("expected expense, got %q", suggestion.Type)
	}
}
