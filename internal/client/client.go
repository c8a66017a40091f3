// Package client provides the HTTP client the mobile app core uses to
// talk to the Paisa API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
	"paisa/internal/report"
)

// Client communicates with the Paisa API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. token may be empty until the device has
// registered.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// SetToken installs the bearer token issued at registration.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a structured error returned by the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// do sends a request and decodes the JSON response into out (when out
// is non-nil). Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Registration is the result of registering this installation.
type Registration struct {
	DeviceID string `json:"device_id"`
	Token    string `json:"token"`
}

// RegisterDevice registers the installation and installs the returned
// token on the client.
func (c *Client) RegisterDevice(ctx context.Context, name, platform string) (*Registration, error) {
	body := struct {
		Name     string `json:"name"`
		Platform string `json:"platform"`
	}{Name: name, Platform: platform}

	var reg Registration
	if err := c.do(ctx, http.MethodPost, "/api/devices/register", body, &reg); err != nil {
		return nil, err
	}
	c.token = reg.Token
	return &reg, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var result struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}

// CreateCategory creates a custom category.
func (c *Client) CreateCategory(ctx context.Context, name, color, icon string) (*models.Category, error) {
	body := struct {
		Name  string `json:"name"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}{Name: name, Color: color, Icon: icon}

	var result struct {
		Category models.Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/categories", body, &result); err != nil {
		return nil, err
	}
	return &result.Category, nil
}

// DeleteCategory deletes a custom category.
func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+categoryID, nil, nil)
}

// TransactionDraft is the payload for creating a transaction.
type TransactionDraft struct {
	Amount          decimal.Decimal        `json:"amount"`
	CategoryID      string                 `json:"category_id"`
	TransactionType models.TransactionType `json:"transaction_type"`
	Description     string                 `json:"description,omitempty"`
	Currency        string                 `json:"currency,omitempty"`
	TransactionDate models.Date            `json:"transaction_date"`
	IsVoiceInput    bool                   `json:"is_voice_input,omitempty"`
}

// TransactionPatch is the payload for a partial transaction update.
// Nil fields are left unchanged by the server.
type TransactionPatch struct {
	Amount          *decimal.Decimal        `json:"amount,omitempty"`
	CategoryID      *string                 `json:"category_id,omitempty"`
	TransactionType *models.TransactionType `json:"transaction_type,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Currency        *string                 `json:"currency,omitempty"`
	TransactionDate *models.Date            `json:"transaction_date,omitempty"`
	IsVoiceInput    *bool                   `json:"is_voice_input,omitempty"`
}

// ListTransactions fetches up to limit transactions, most recent first.
// limit <= 0 uses the server default.
func (c *Client) ListTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	path := "/api/transactions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var result struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Transactions, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error) {
	var result struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transactions", draft, &result); err != nil {
		return nil, err
	}
	return &result.Transaction, nil
}

// UpdateTransaction applies a partial update.
func (c *Client) UpdateTransaction(ctx context.Context, transactionID string, patch TransactionPatch) (*models.Transaction, error) {
	var result struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+transactionID, patch, &result); err != nil {
		return nil, err
	}
	return &result.Transaction, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+transactionID, nil, nil)
}

// MonthlyReport mirrors the monthly analytics response.
type MonthlyReport struct {
	Month             int                        `json:"month"`
	Year              int                        `json:"year"`
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpense      decimal.Decimal            `json:"total_expense"`
	NetAmount         decimal.Decimal            `json:"net_amount"`
	CategoryBreakdown []report.CategoryBreakdown `json:"category_breakdown"`
	TransactionCount  int                        `json:"transaction_count"`
}

// MonthlyAnalytics fetches the server-side monthly report.
func (c *Client) MonthlyAnalytics(ctx context.Context, year, month int) (*MonthlyReport, error) {
	path := fmt.Sprintf("/api/analytics/monthly/%d/%d", year, month)
	var result MonthlyReport
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CategorySummaryReport mirrors the category summary response.
type CategorySummaryReport struct {
	Categories []report.CategorySummary `json:"categories"`
	PeriodDays int                      `json:"period_days"`
}

// CategorySummary fetches the server-side per-category summary.
func (c *Client) CategorySummary(ctx context.Context, days int) (*CategorySummaryReport, error) {
	path := fmt.Sprintf("/api/analytics/category-summary/%d", days)
	var result CategorySummaryReport
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSettings fetches the installation settings.
func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var result struct {
		Settings models.Settings `json:"settings"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &result); err != nil {
		return nil, err
	}
	return &result.Settings, nil
}

// SettingsPatch is the payload for a partial settings update.
type SettingsPatch struct {
	DefaultCurrency   *string `json:"default_currency,omitempty"`
	DarkMode          *bool   `json:"dark_mode,omitempty"`
	VoiceInputEnabled *bool   `json:"voice_input_enabled,omitempty"`
	SyncEnabled       *bool   `json:"sync_enabled,omitempty"`
}

// UpdateSettings applies a partial settings update.
func (c *Client) UpdateSettings(ctx context.Context, patch SettingsPatch) (*models.Settings, error) {
	var result struct {
		Settings models.Settings `json:"settings"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/settings", patch, &result); err != nil {
		return nil, err
	}
	return &result.Settings, nil
}
