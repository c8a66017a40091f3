package services

import (
	"testing"

	"paisa/internal/models"
	"paisa/internal/testutil"
)

func TestEnsureDefaults(t *testing.T) {
	t.Run("seeds_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.AssertNoError(t, svc.EnsureDefaults())

		categories, err := svc.GetCategories()
		testutil.AssertNoError(t, err)
		if len(categories) != len(models.DefaultCategories) {
			t.Fatalf("expected %d categories, got %d", len(models.DefaultCategories), len(categories))
		}

		// Second call must not duplicate the seed set.
		testutil.AssertNoError(t, svc.EnsureDefaults())
		categories, err = svc.GetCategories()
		testutil.AssertNoError(t, err)
		if len(categories) != len(models.DefaultCategories) {
			t.Errorf("seeding twice duplicated categories: %d", len(categories))
		}
	})

	t.Run("skips_when_categories_exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.CreateTestCategory(t, db)

		testutil.AssertNoError(t, svc.EnsureDefaults())

		categories, err := svc.GetCategories()
		testutil.AssertNoError(t, err)
		if len(categories) != 1 {
			t.Errorf("expected 1 category, got %d", len(categories))
		}
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("creates_custom_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		category, err := svc.CreateCategory("Pets", "#ABCDEF", "paw-print")
		testutil.AssertNoError(t, err)

		if category.ID == "" {
			t.Fatal("expected non-empty category ID")
		}
		if !category.IsCustom {
			t.Error("created categories must be custom")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("", "#ABCDEF", "paw-print")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Pets", "#ABCDEF", "paw-print")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory("Pets", "#123456", "heart")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("default_category_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.AssertNoError(t, svc.EnsureDefaults())

		categories, err := svc.GetCategories()
		testutil.AssertNoError(t, err)

		err = svc.DeleteCategory(categories[0].ID)
		testutil.AssertAppError(t, err, "DEFAULT_CATEGORY")
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		err := svc.DeleteCategory("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("custom_delete_reassigns_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.AssertNoError(t, svc.EnsureDefaults())

		custom, err := svc.CreateCategory("Hobby", "#ABCDEF", "gamepad")
		testutil.AssertNoError(t, err)
		tx := testutil.CreateTestTransaction(t, db, custom, models.TransactionTypeExpense, "250")

		testutil.AssertNoError(t, svc.DeleteCategory(custom.ID))

		// The category is gone but the transaction survives, moved to
		// the fallback category.
		_, err = svc.GetCategoryByID(custom.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		var moved models.Transaction
		testutil.AssertNoError(t, db.Where("id = ?", tx.ID).First(&moved).Error)
		if moved.CategoryName != models.FallbackCategoryName {
			t.Errorf("expected transaction in %s, got %s", models.FallbackCategoryName, moved.CategoryName)
		}

		fallback, err := svc.GetCategoryByID(moved.CategoryID)
		testutil.AssertNoError(t, err)
		if fallback.Name != models.FallbackCategoryName {
			t.Errorf("category_id should point at the fallback category, got %s", fallback.Name)
		}
	})
}
