package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/report"
	"paisa/internal/services"
)

// AnalyticsHandler handles analytics requests
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// MonthlyAnalyticsQuery holds the optional query parameters of the
// monthly analytics endpoint.
type MonthlyAnalyticsQuery struct {
	Sort string `form:"sort" binding:"omitempty,breakdown_sort"`
}

// MonthlyAnalytics reports totals and category breakdown for a month
// @Summary     Monthly analytics
// @Description Totals, net amount, and category breakdown for one calendar month
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       year path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Param       sort query string false "Breakdown order (amount_desc, amount_asc, name, count_desc)"
// @Success     200 {object} services.MonthlyAnalytics "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Router      /analytics/monthly/{year}/{month} [get]
func (h *AnalyticsHandler) MonthlyAnalytics(c *gin.Context) {
	year, err := parsePathInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := parsePathInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query MonthlyAnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	analytics, err := h.analyticsService.MonthlyAnalytics(year, time.Month(month), report.SortMode(query.Sort))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// CategorySummary reports per-category totals over a trailing window
// @Summary     Category summary
// @Description Per-category total, count, and average over the trailing N days
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       days path int true "Window size in days"
// @Success     200 {object} services.CategorySummaryReport "Category summary"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Router      /analytics/category-summary/{days} [get]
func (h *AnalyticsHandler) CategorySummary(c *gin.Context) {
	days, err := parsePathInt(c, "days")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.CategorySummary(days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
