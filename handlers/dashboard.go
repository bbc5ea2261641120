package handlers

import (
	"net/http"

	dashboardSvc "glowdesk/services/dashboard"

	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the admin dashboard summary.
type DashboardHandler struct {
	Service dashboardSvc.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(service dashboardSvc.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// GetSummary handles GET /api/dashboard/summary.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary()
	if err != nil {
		utils.GetLogger().Error("GetSummary: aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
