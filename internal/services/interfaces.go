package services

import (
	"time"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
	"paisa/internal/pagination"
	"paisa/internal/report"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	EnsureDefaults() error
	CreateCategory(name, color, icon string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	DeleteCategory(categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *models.Date
	ToDate     *models.Date
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionUpdate holds the fields of a partial transaction update.
// Nil fields are left unchanged.
type TransactionUpdate struct {
	Amount          *decimal.Decimal
	CategoryID      *string
	TransactionType *models.TransactionType
	Description     *string
	Currency        *string
	TransactionDate *models.Date
	IsVoiceInput    *bool
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(
		amount decimal.Decimal,
		categoryID string,
		transactionType models.TransactionType,
		description string,
		currency string,
		date models.Date,
		isVoiceInput bool,
	) (*models.Transaction, error)
	GetTransactions(page pagination.ListRequest, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(transactionID string) (*models.Transaction, error)
	UpdateTransaction(transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(transactionID string) error
}

// MonthlyAnalytics is the report for one calendar month.
type MonthlyAnalytics struct {
	Month             int                        `json:"month"`
	Year              int                        `json:"year"`
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpense      decimal.Decimal            `json:"total_expense"`
	NetAmount         decimal.Decimal            `json:"net_amount"`
	CategoryBreakdown []report.CategoryBreakdown `json:"category_breakdown"`
	TransactionCount  int                        `json:"transaction_count"`
}

// CategorySummaryReport is the per-category report over a trailing window.
type CategorySummaryReport struct {
	Categories []report.CategorySummary `json:"categories"`
	PeriodDays int                      `json:"period_days"`
}

// AnalyticsServicer defines the contract for server-side analytics.
type AnalyticsServicer interface {
	MonthlyAnalytics(year int, month time.Month, sort report.SortMode) (*MonthlyAnalytics, error)
	CategorySummary(days int) (*CategorySummaryReport, error)
}

// SettingsUpdate holds the fields of a partial settings update.
type SettingsUpdate struct {
	DefaultCurrency   *string
	DarkMode          *bool
	VoiceInputEnabled *bool
	SyncEnabled       *bool
}

// SettingsServicer defines the contract for the settings singleton.
type SettingsServicer interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(update SettingsUpdate) (*models.Settings, error)
}

// DeviceServicer defines the contract for device registration.
type DeviceServicer interface {
	RegisterDevice(name, platform string) (*models.Device, error)
	Touch(deviceID string) error
}
