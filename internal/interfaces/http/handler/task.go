package handler

import (
	"time"

	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles project task API endpoints
type TaskHandler struct {
	BaseHandler
	taskService *appproject.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *appproject.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// RegisterRoutes registers task routes on the given group
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/projects/:id/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PUT("/:task_id/complete", h.ToggleComplete)
	}
}

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	Description  string  `json:"description" binding:"required"`
	DueDate      *string `json:"due_date"`
	AssigneeID   string  `json:"assignee_id" binding:"required,uuid"`
	AssignedByID *string `json:"assigned_by_id" binding:"omitempty,uuid"`
	CategoryID   *string `json:"category_id" binding:"omitempty,uuid"`
}

// ToggleCompleteRequest represents a request to set a task's completion state
type ToggleCompleteRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// Create godoc
// @Summary      Create a task on a project
// @Description  Creates a task. A task assigned by someone other than the assignee is flagged for review.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body CreateTaskRequest true "Task creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq := appproject.CreateTaskRequest{
		Description: req.Description,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			h.BadRequest(c, "Invalid due_date, expected YYYY-MM-DD")
			return
		}
		appReq.DueDate = &due
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		h.BadRequest(c, "Invalid assignee ID format")
		return
	}
	appReq.AssigneeID = assigneeID

	if req.AssignedByID != nil && *req.AssignedByID != "" {
		assignedByID, err := uuid.Parse(*req.AssignedByID)
		if err != nil {
			h.BadRequest(c, "Invalid assigned_by ID format")
			return
		}
		appReq.AssignedByID = assignedByID
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			h.BadRequest(c, "Invalid category ID format")
			return
		}
		appReq.CategoryID = &categoryID
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), projectID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, task)
}

// List godoc
// @Summary      List a project's tasks
// @Description  Returns the project's tasks ordered for next-action display: needs-review first, then by due date, then newest first.
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tasks)
}

// ToggleComplete godoc
// @Summary      Set a task's completion state
// @Description  Idempotent: setting the state a task is already in changes nothing. Completing a task clears its review flag.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        task_id path string true "Task ID" format(uuid)
// @Param        request body ToggleCompleteRequest true "Completion state"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/tasks/{task_id}/complete [put]
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID format")
		return
	}

	var req ToggleCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	task, err := h.taskService.ToggleComplete(c.Request.Context(), projectID, taskID, *req.Completed)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, task)
}
