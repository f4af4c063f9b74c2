package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsphere/skillsphere/internal/app/services"
	"github.com/skillsphere/skillsphere/internal/middleware"
)

// AnalyticsController serves aggregated learning statistics
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetDashboardStats returns the headline dashboard counters
// @Summary Get dashboard statistics
// @Description Returns course counts, certificate count and total hours for the caller
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStats "Dashboard statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.analyticsService.GetDashboardStats(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetAnalytics returns the full analytics payload
// @Summary Get analytics
// @Description Returns the six-month activity buckets, category distribution and dashboard counters
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse "Analytics payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.GetAnalytics(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
