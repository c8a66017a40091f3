package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateTransaction records a new transaction. The category must exist;
// its display name is denormalized onto the row.
func (s *transactionService) CreateTransaction(
	amount decimal.Decimal,
	categoryID string,
	transactionType models.TransactionType,
	description string,
	currency string,
	date models.Date,
	isVoiceInput bool,
) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	if currency == "" {
		currency = models.CurrencyINR
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}

	category, err := s.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Amount:          amount,
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		TransactionType: transactionType,
		Description:     description,
		Currency:        currency,
		TransactionDate: date,
		IsVoiceInput:    isVoiceInput,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// applyTransactionFilters narrows a query by the optional filter fields.
func applyTransactionFilters(q *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.FromDate != nil {
		q = q.Where("transaction_date >= ?", filter.FromDate.Time)
	}
	if filter.ToDate != nil {
		q = q.Where("transaction_date <= ?", filter.ToDate.Time)
	}
	if filter.Type != nil {
		q = q.Where("transaction_type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	return q
}

// GetTransactions retrieves transactions most-recent-first.
func (s *transactionService) GetTransactions(page pagination.ListRequest, filter TransactionFilter) ([]models.Transaction, error) {
	page.Defaults()

	q := s.db.Model(&models.Transaction{})
	q = applyTransactionFilters(q, filter)

	var transactions []models.Transaction
	if err := q.Order("created_at DESC").
		Scopes(pagination.Scope(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. A changed category is
// revalidated and its name denormalized again.
func (s *transactionService) UpdateTransaction(transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Amount != nil {
		if !update.Amount.IsPositive() {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["amount"] = *update.Amount
	}
	if update.TransactionType != nil {
		switch *update.TransactionType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["transaction_type"] = *update.TransactionType
	}
	if update.CategoryID != nil {
		category, err := s.categoryService.GetCategoryByID(*update.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
		updates["category_name"] = category.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Currency != nil {
		updates["currency"] = *update.Currency
	}
	if update.TransactionDate != nil {
		updates["transaction_date"] = update.TransactionDate.Time
	}
	if update.IsVoiceInput != nil {
		updates["is_voice_input"] = *update.IsVoiceInput
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetTransactionByID(transactionID)
}

// DeleteTransaction removes a transaction permanently.
func (s *transactionService) DeleteTransaction(transactionID string) error {
	result := s.db.Where("id = ?", transactionID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
