package handler

import (
	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PanelHandler handles panel configuration API endpoints
type PanelHandler struct {
	BaseHandler
	panelService *appproject.PanelConfigService
}

// NewPanelHandler creates a new PanelHandler
func NewPanelHandler(panelService *appproject.PanelConfigService) *PanelHandler {
	return &PanelHandler{panelService: panelService}
}

// RegisterRoutes registers panel configuration routes on the given group
func (h *PanelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	panels := rg.Group("/projects/:id/panels")
	{
		panels.GET("", h.List)
		panels.POST("/batch", h.ApplyBatch)
	}
}

// PanelBatchRequest represents a batch of panel configuration operations
type PanelBatchRequest struct {
	Deletes []string `json:"deletes"`
	Updates []struct {
		ID     string         `json:"id" binding:"required,uuid"`
		Fields map[string]any `json:"fields"`
	} `json:"updates"`
	Creates []map[string]any `json:"creates"`
}

// List godoc
// @Summary      List a project's panel configurations
// @Tags         panels
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/panels [get]
func (h *PanelHandler) List(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	panels, err := h.panelService.List(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, panels)
}

// ApplyBatch godoc
// @Summary      Apply a batch of panel configuration edits
// @Description  Applies deletes, then updates, then creates. Each operation succeeds or fails
// @Description  independently; committed operations are never rolled back by later failures.
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body PanelBatchRequest true "Batch of operations"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/panels/batch [post]
func (h *PanelHandler) ApplyBatch(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req PanelBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq := appproject.PanelBatchRequest{
		Creates: req.Creates,
	}

	for _, raw := range req.Deletes {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid panel ID in deletes: "+raw)
			return
		}
		appReq.Deletes = append(appReq.Deletes, id)
	}

	for _, update := range req.Updates {
		id, err := uuid.Parse(update.ID)
		if err != nil {
			h.BadRequest(c, "Invalid panel ID in updates: "+update.ID)
			return
		}
		appReq.Updates = append(appReq.Updates, appproject.PanelUpdate{
			ID:     id,
			Fields: update.Fields,
		})
	}

	result, err := h.panelService.ApplyBatch(c.Request.Context(), projectID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"results":   result.Results,
		"succeeded": result.Succeeded(),
		"failed":    result.Failed(),
	})
}
