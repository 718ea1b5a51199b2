package handler

import (
	"time"

	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NoteHandler handles project note and tender offer API endpoints
type NoteHandler struct {
	BaseHandler
	projectService *appproject.ProjectService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(projectService *appproject.ProjectService) *NoteHandler {
	return &NoteHandler{projectService: projectService}
}

// RegisterRoutes registers note and tender offer routes on the given group
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/projects/:id/notes")
	{
		notes.POST("", h.CreateNote)
		notes.GET("", h.ListNotes)
	}

	offers := rg.Group("/projects/:id/tender-offers")
	{
		offers.POST("", h.CreateTenderOffer)
		offers.GET("", h.ListTenderOffers)
	}
}

// CreateNoteRequest represents a request to add a note to a project
type CreateNoteRequest struct {
	AuthorID string `json:"author_id" binding:"required,uuid"`
	Body     string `json:"body" binding:"required"`
}

// CreateTenderOfferRequest represents a request to record a tender offer
type CreateTenderOfferRequest struct {
	Bidder    string          `json:"bidder" binding:"required,max=200"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	OfferDate *string         `json:"offer_date"`
}

// CreateNote godoc
// @Summary      Add a note to a project
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body CreateNoteRequest true "Note creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		h.BadRequest(c, "Invalid author ID format")
		return
	}

	note, err := h.projectService.AddNote(c.Request.Context(), projectID, appproject.CreateNoteRequest{
		AuthorID: authorID,
		Body:     req.Body,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, note)
}

// ListNotes godoc
// @Summary      List a project's notes
// @Description  Returns the project's notes, newest first
// @Tags         notes
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	notes, err := h.projectService.ListNotes(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notes)
}

// CreateTenderOffer godoc
// @Summary      Record a tender offer against a project
// @Tags         tender-offers
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body CreateTenderOfferRequest true "Tender offer request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/tender-offers [post]
func (h *NoteHandler) CreateTenderOffer(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req CreateTenderOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq := appproject.CreateTenderOfferRequest{
		Bidder: req.Bidder,
		Amount: req.Amount,
	}

	if req.OfferDate != nil && *req.OfferDate != "" {
		offerDate, err := time.Parse("2006-01-02", *req.OfferDate)
		if err != nil {
			h.BadRequest(c, "Invalid offer_date, expected YYYY-MM-DD")
			return
		}
		appReq.OfferDate = &offerDate
	}

	offer, err := h.projectService.AddTenderOffer(c.Request.Context(), projectID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, offer)
}

// ListTenderOffers godoc
// @Summary      List a project's tender offers
// @Description  Returns the project's tender offers, highest amount first
// @Tags         tender-offers
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id}/tender-offers [get]
func (h *NoteHandler) ListTenderOffers(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	offers, err := h.projectService.ListTenderOffers(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, offers)
}
