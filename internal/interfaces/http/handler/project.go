package handler

import (
	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/devtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles project-related API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *appproject.ProjectService
	sectionService *appproject.SectionUpdateService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *appproject.ProjectService, sectionService *appproject.SectionUpdateService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		sectionService: sectionService,
	}
}

// RegisterRoutes registers project routes on the given group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.GetByID)
		projects.GET("/:id/stage", h.GetStage)
		projects.PUT("/:id/status", h.SetStatus)
		projects.PUT("/:id/sections/:section", h.UpdateSection)
	}
}

// CreateProjectRequest represents a request to create a new project
type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	SiteCode string `json:"site_code" binding:"max=50"`
	Address  string `json:"address"`
	Town     string `json:"town" binding:"max=100"`
	Postcode string `json:"postcode" binding:"max=20"`
}

// SetStatusRequest represents a request to change a project's status
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProjectListFilter represents list query parameters for projects
type ProjectListFilter struct {
	dto.ListRequest
	Status string `form:"status"`
	Town   string `form:"town"`
}

// Create godoc
// @Summary      Create a new project
// @Description  Create a new site development project. New projects start in the survey stage.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	detail, err := h.projectService.CreateProject(c.Request.Context(), appproject.CreateProjectRequest{
		Name:     req.Name,
		SiteCode: req.SiteCode,
		Address:  req.Address,
		Town:     req.Town,
		Postcode: req.Postcode,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, detail)
}

// List godoc
// @Summary      List projects
// @Description  Retrieve a paginated list of projects with inferred stage and stalled flag
// @Tags         projects
// @Produce      json
// @Param        status query string false "Status filter (active, on_hold, dropped)"
// @Param        town query string false "Town filter"
// @Param        search query string false "Search keyword (name, site code, town, postcode)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var req ProjectListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}
	if req.Town != "" {
		filter.Filters["town"] = req.Town
	}

	page, err := h.projectService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID godoc
// @Summary      Get project by ID
// @Description  Retrieve a project with all sections, inferred stage and completeness flags
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	detail, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// GetStage godoc
// @Summary      Get a project's inferred stage
// @Description  Returns the stage derived from the project's current field state. The stage is never stored.
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/stage [get]
func (h *ProjectHandler) GetStage(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	stage, err := h.projectService.GetStage(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"stage": stage})
}

// SetStatus godoc
// @Summary      Change a project's status
// @Description  Set the project status to active, on_hold or dropped
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body SetStatusRequest true "Status change request"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/status [put]
func (h *ProjectHandler) SetStatus(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	detail, err := h.projectService.SetStatus(c.Request.Context(), projectID, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, detail)
}

// UpdateSection godoc
// @Summary      Partially update one section of a project
// @Description  Reconciles a raw payload against one section. Unknown keys are discarded,
// @Description  blank strings clear fields, and all validation failures are reported together.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        section path string true "Section name" Enums(commercial, design, planning, marketing, build)
// @Param        request body object true "Section field payload"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/sections/{section} [put]
func (h *ProjectHandler) UpdateSection(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.sectionService.UpdateSection(c.Request.Context(), projectID, c.Param("section"), payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
