package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"paisa/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a custom category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()), true)
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string, isCustom bool) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     name,
		Color:    "#FF6B6B",
		Icon:     "dollar-sign",
		IsCustom: isCustom,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// SeedDefaultCategories inserts the fixed default category set.
func SeedDefaultCategories(t *testing.T, db *gorm.DB) []models.Category {
	t.Helper()

	seed := make([]models.Category, len(models.DefaultCategories))
	copy(seed, models.DefaultCategories)
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed default categories: %v", err)
	}
	return seed
}

// CreateTestTransaction creates a transaction dated today.
func CreateTestTransaction(t *testing.T, db *gorm.DB, category *models.Category, txType models.TransactionType, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, category, txType, amount, models.DateOf(time.Now()))
}

// CreateTestTransactionOn creates a transaction with the given date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, category *models.Category, txType models.TransactionType, amount string, date models.Date) *models.Transaction {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}

	tx := &models.Transaction{
		Amount:          amt,
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		TransactionType: txType,
		Currency:        models.CurrencyINR,
		TransactionDate: date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// Tx builds an in-memory transaction for report tests without touching
// the database.
func Tx(category string, txType models.TransactionType, amount string, date models.Date) models.Transaction {
	return models.Transaction{
		CategoryName:    category,
		TransactionType: txType,
		Amount:          decimal.RequireFromString(amount),
		Currency:        models.CurrencyINR,
		TransactionDate: date,
	}
}
