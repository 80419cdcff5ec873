package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/services"
)

// AnalyticsHandler handles analytics requests
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// AnomalyCheckRequest represents the request payload for an advisory anomaly check
type AnomalyCheckRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required,expense_category"`
}

// GetAggregates returns time-bucketed totals at the requested granularity
// (week, month, or year; month by default).
func (h *AnalyticsHandler) GetAggregates(c *gin.Context) {
	granularity := models.Granularity(c.DefaultQuery("granularity", "month"))

	result, err := h.analyticsService.Aggregates(granularity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBreakdown returns per-category totals
func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.Breakdown()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetTrend returns the cumulative spending trend
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	trend, err := h.analyticsService.Trend()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// GetForecast returns predicted future monthly totals
func (h *AnalyticsHandler) GetForecast(c *gin.Context) {
	periods, err := strconv.Atoi(c.DefaultQuery("periods", "1"))
	if err != nil || periods < 1 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "periods must be a positive integer"))
		return
	}

	forecast, err := h.analyticsService.Forecast(periods)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": forecast})
}

// GetInsights returns the expense summary
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	insight, err := h.analyticsService.Insights()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insight})
}

// GetRecommendations returns suggested monthly budgets per category
func (h *AnalyticsHandler) GetRecommendations(c *gin.Context) {
	recommendations, err := h.analyticsService.Recommendations()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// GetComparison compares the two most recent monthly totals
func (h *AnalyticsHandler) GetComparison(c *gin.Context) {
	comparison, err := h.analyticsService.Comparison()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

// GetTiers returns Must/Need/Want spending tier totals
func (h *AnalyticsHandler) GetTiers(c *gin.Context) {
	tiers, err := h.analyticsService.Tiers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiers": tiers})
}

// CheckAnomaly reports whether an amount would be unusual for a category.
// Advisory only: it never blocks anything.
func (h *AnalyticsHandler) CheckAnomaly(c *gin.Context) {
	var req AnomalyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anomalous, err := h.analyticsService.CheckAnomaly(req.Amount, models.Category(req.Category))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"anomalous": anomalous})
}
