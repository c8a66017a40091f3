package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/report"
)

// analyticsService computes server-side reports. All aggregation is
// delegated to the report package so the client and the API share one
// implementation.
type analyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, now: time.Now}
}

// MonthlyAnalytics reports totals and the category breakdown for one
// calendar month.
func (s *analyticsService) MonthlyAnalytics(year int, month time.Month, sort report.SortMode) (*MonthlyAnalytics, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if sort == "" {
		sort = report.SortAmountDesc
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var transactions []models.Transaction
	if err := s.db.
		Where("transaction_date >= ? AND transaction_date <= ?", start, end).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := report.Sum(transactions)
	return &MonthlyAnalytics{
		Month:             int(month),
		Year:              year,
		TotalIncome:       totals.Income,
		TotalExpense:      totals.Expense,
		NetAmount:         totals.Net,
		CategoryBreakdown: report.Breakdown(transactions, sort),
		TransactionCount:  len(transactions),
	}, nil
}

// CategorySummary reports per-category totals over the trailing window
// of the given number of days.
func (s *analyticsService) CategorySummary(days int) (*CategorySummaryReport, error) {
	if days <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be positive")
	}

	start := models.DateOf(s.now()).AddDate(0, 0, -(days - 1))

	var transactions []models.Transaction
	if err := s.db.
		Where("transaction_date >= ?", start).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &CategorySummaryReport{
		Categories: report.Summarize(transactions),
		PeriodDays: days,
	}, nil
}
