package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Currency codes supported by the application.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// Transaction represents a single recorded income or expense event.
// Amount is always strictly positive; the sign is conveyed by Type.
type Transaction struct {
	Base
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	CategoryID      string          `gorm:"type:uuid;not null" json:"category_id"`
	CategoryName    string          `gorm:"not null" json:"category_name"`
	TransactionType TransactionType `gorm:"not null" json:"transaction_type"`
	Description     string          `json:"description"`
	Currency        string          `gorm:"not null;default:INR" json:"currency"`
	TransactionDate Date            `gorm:"type:date;not null" json:"transaction_date"`
	IsVoiceInput    bool            `gorm:"default:false" json:"is_voice_input"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
