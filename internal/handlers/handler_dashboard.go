package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated financial overview.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// registerDashboardRoutes sets up the dashboard route behind the access guard.
func registerDashboardRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &DashboardHandler{dashboardService: services.Dashboard}
	rg.GET("/dashboard", h.GetDashboard)
}

// GetDashboard godoc
// @Summary Get the financial overview
// @Description Returns lifetime totals, the recent income and expense windows and the latest transactions.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
