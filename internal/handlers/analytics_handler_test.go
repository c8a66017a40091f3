package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/report"
	"paisa/internal/services"
)

func newAnalyticsRouter(mock *mockAnalyticsService) *gin.Engine {
	router := gin.New()
	handler := NewAnalyticsHandler(mock)
	router.GET("/analytics/monthly/:year/:month", handler.MonthlyAnalytics)
	router.GET("/analytics/category-summary/:days", handler.CategorySummary)
	return router
}

func TestMonthlyAnalyticsHandler(t *testing.T) {
	t.Run("returns_report", func(t *testing.T) {
		var gotYear int
		var gotMonth time.Month
		var gotSort report.SortMode
		mock := &mockAnalyticsService{
			monthlyFunc: func(year int, month time.Month, sort report.SortMode) (*services.MonthlyAnalytics, error) {
				gotYear, gotMonth, gotSort = year, month, sort
				return &services.MonthlyAnalytics{
					Month:        int(month),
					Year:         year,
					TotalIncome:  decimal.NewFromInt(5000),
					TotalExpense: decimal.NewFromInt(1500),
					NetAmount:    decimal.NewFromInt(3500),
				}, nil
			},
		}
		router := newAnalyticsRouter(mock)

		w := performRequest(router, http.MethodGet, "/analytics/monthly/2025/3?sort=name", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if gotYear != 2025 || gotMonth != time.March || gotSort != report.SortName {
			t.Errorf("service received %d %v %q", gotYear, gotMonth, gotSort)
		}

		// The report is the response body, not wrapped in an envelope.
		var resp services.MonthlyAnalytics
		decodeBody(t, w, &resp)
		if resp.Year != 2025 || resp.Month != 3 {
			t.Errorf("unexpected period in response: %d-%d", resp.Year, resp.Month)
		}
	})

	t.Run("non_numeric_month", func(t *testing.T) {
		router := newAnalyticsRouter(&mockAnalyticsService{})

		w := performRequest(router, http.MethodGet, "/analytics/monthly/2025/march", nil)

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("invalid_sort", func(t *testing.T) {
		router := newAnalyticsRouter(&mockAnalyticsService{})

		w := performRequest(router, http.MethodGet, "/analytics/monthly/2025/3?sort=biggest", nil)

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("month_out_of_range", func(t *testing.T) {
		mock := &mockAnalyticsService{
			monthlyFunc: func(year int, month time.Month, sort report.SortMode) (*services.MonthlyAnalytics, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
			},
		}
		router := newAnalyticsRouter(mock)

		w := performRequest(router, http.MethodGet, "/analytics/monthly/2025/13", nil)

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestCategorySummaryHandler(t *testing.T) {
	t.Run("returns_summary", func(t *testing.T) {
		var gotDays int
		mock := &mockAnalyticsService{
			summaryFunc: func(days int) (*services.CategorySummaryReport, error) {
				gotDays = days
				return &services.CategorySummaryReport{
					Categories: []report.CategorySummary{
						{Category: "Groceries", Total: decimal.NewFromInt(300), Count: 2, AvgAmount: decimal.NewFromInt(150)},
					},
					PeriodDays: days,
				}, nil
			},
		}
		router := newAnalyticsRouter(mock)

		w := performRequest(router, http.MethodGet, "/analytics/category-summary/30", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if gotDays != 30 {
			t.Errorf("expected 30 days, got %d", gotDays)
		}

		var resp services.CategorySummaryReport
		decodeBody(t, w, &resp)
		if resp.PeriodDays != 30 || len(resp.Categories) != 1 {
			t.Errorf("unexpected summary: %+v", resp)
		}
	})

	t.Run("non_numeric_days", func(t *testing.T) {
		router := newAnalyticsRouter(&mockAnalyticsService{})

		w := performRequest(router, http.MethodGet, "/analytics/category-summary/week", nil)

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}
