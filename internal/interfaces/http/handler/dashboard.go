package handler

import (
	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *appproject.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *appproject.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.Get)
		dashboard.POST("/refresh", h.Refresh)
	}
}

// Get godoc
// @Summary      Get the portfolio dashboard
// @Description  Returns aggregated stage/status counts, task totals and per-project activity, served from cache when fresh.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	snapshot, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// Refresh godoc
// @Summary      Rebuild the dashboard snapshot
// @Description  Invalidates the cached snapshot and aggregates a fresh one
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *gin.Context) {
	snapshot, err := h.dashboardService.Refresh(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}
