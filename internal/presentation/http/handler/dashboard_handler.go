package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/suplefit/backoffice-api/internal/application/service"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the aggregated dashboard figures
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard statistics retrieved successfully", stats)
}

// LowStockAlerts returns products at or below their alert threshold
func (h *DashboardHandler) LowStockAlerts(c *gin.Context) {
	products, err := h.dashboardService.GetLowStockAlerts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Low stock alerts retrieved successfully", products)
}
