package project

import (
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectSummaryResponse is the list/dashboard projection of a project.
// Stage is computed at read time, never read from storage.
type ProjectSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	SiteCode      string    `json:"site_code"`
	Town          string    `json:"town"`
	Postcode      string    `json:"postcode"`
	Status        string    `json:"status"`
	Stage         string    `json:"stage"`
	Stalled       bool      `json:"stalled"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ProjectDetailResponse is the full single-project projection
type ProjectDetailResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	SiteCode      string          `json:"site_code"`
	Address       string          `json:"address"`
	Town          string          `json:"town"`
	Postcode      string          `json:"postcode"`
	Latitude      *decimal.Decimal `json:"latitude"`
	Longitude     *decimal.Decimal `json:"longitude"`
	Status        string          `json:"status"`
	Stage         string          `json:"stage"`
	StageComplete map[string]bool `json:"stage_complete"`
	SurveyorNotes string          `json:"surveyor_notes,omitempty"`

	Commercial CommercialSection `json:"commercial"`
	Design     DesignSection     `json:"design"`
	Planning   PlanningSection   `json:"planning"`
	Marketing  MarketingSection  `json:"marketing"`
	Build      BuildSection      `json:"build"`

	LastUpdatedAt time.Time `json:"last_updated_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CommercialSection groups the lease and deal terms of a project
type CommercialSection struct {
	OfferAgreedDate    *time.Time       `json:"offer_agreed_date"`
	ContractSignedDate *time.Time       `json:"contract_signed_date"`
	LeasePerAnnum      *decimal.Decimal `json:"lease_per_annum"`
	RentDeposit        *decimal.Decimal `json:"rent_deposit"`
	RatesPerAnnum      *decimal.Decimal `json:"rates_per_annum"`
	PowerPerAnnum      *decimal.Decimal `json:"power_per_annum"`
	InsurancePerAnnum  *decimal.Decimal `json:"insurance_per_annum"`
	TermYears          *int             `json:"term_years"`
	RentReviewYears    *int             `json:"rent_review_years"`
	BreakClauseYears   *int             `json:"break_clause_years"`
	Probability        *int             `json:"probability"`
	CommissionRate     *decimal.Decimal `json:"commission_rate"`
	CapexBudget        *decimal.Decimal `json:"capex_budget"`
	LandlordName       string           `json:"landlord_name,omitempty"`
	LandlordAgent      string           `json:"landlord_agent,omitempty"`
}

// DesignSection groups the artwork and sign-off fields
type DesignSection struct {
	DesignRef         string     `json:"design_ref,omitempty"`
	DesignStatus      string     `json:"design_status,omitempty"`
	DesignSignedOff   string     `json:"design_signed_off"`
	DesignSignOffDate *time.Time `json:"design_sign_off_date"`
	DesignSignedOffBy string     `json:"design_signed_off_by,omitempty"`
}

// PlanningSection groups the two independent consent applications
type PlanningSection struct {
	PlanningStatusID         *uuid.UUID `json:"planning_status_id"`
	PlanningSubmittedDate    *time.Time `json:"planning_submitted_date"`
	PlanningRegisteredDate   *time.Time `json:"planning_registered_date"`
	PlanningDeterminedDate   *time.Time `json:"planning_determined_date"`
	PlanningAppealLodgedDate *time.Time `json:"planning_appeal_lodged_date"`
	PlanningAppealDecision   string     `json:"planning_appeal_decision,omitempty"`
	PlanningConditionsCount  *int       `json:"planning_conditions_count"`
	AdvertStatusID           *uuid.UUID `json:"advert_status_id"`
	AdvertSubmittedDate      *time.Time `json:"advert_submitted_date"`
	AdvertRegisteredDate     *time.Time `json:"advert_registered_date"`
	AdvertDeterminedDate     *time.Time `json:"advert_determined_date"`
	AdvertAppealLodgedDate   *time.Time `json:"advert_appeal_lodged_date"`
	AdvertAppealDecision     string     `json:"advert_appeal_decision,omitempty"`
	AdvertConditionsCount    *int       `json:"advert_conditions_count"`
	PlanningScore            *int       `json:"planning_score"`
}

// MarketingSection groups the commercialisation references
type MarketingSection struct {
	MediaOwnerID *uuid.UUID `json:"media_owner_id"`
	AgentID      *uuid.UUID `json:"agent_id"`
}

// BuildSection groups the construction milestones
type BuildSection struct {
	BuildStartDate      *time.Time `json:"build_start_date"`
	BuildCompletionDate *time.Time `json:"build_completion_date"`
	BuildLiveDate       *time.Time `json:"build_live_date"`
	ContractorName      string     `json:"contractor_name,omitempty"`
	BuildNotes          string     `json:"build_notes,omitempty"`
}

// TaskResponse is the API projection of a task
type TaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProjectID    uuid.UUID  `json:"project_id"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	Completed    bool       `json:"completed"`
	NeedsReview  bool       `json:"needs_review"`
	Overdue      bool       `json:"overdue"`
	AssigneeID   uuid.UUID  `json:"assignee_id"`
	AssignedByID uuid.UUID  `json:"assigned_by_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PanelConfigResponse is the API projection of a panel configuration
type PanelConfigResponse struct {
	ID            uuid.UUID        `json:"id"`
	ProjectID     uuid.UUID        `json:"project_id"`
	PanelTypeID   *uuid.UUID       `json:"panel_type_id"`
	PanelSizeID   *uuid.UUID       `json:"panel_size_id"`
	OrientationID *uuid.UUID       `json:"orientation_id"`
	StructureID   *uuid.UUID       `json:"structure_id"`
	Digital       string           `json:"digital"`
	Illuminated   string           `json:"illuminated"`
	Sides         *int             `json:"sides"`
	Quantity      *int             `json:"quantity"`
	HeightMM      *decimal.Decimal `json:"height_mm"`
	WidthMM       *decimal.Decimal `json:"width_mm"`
}

// NoteResponse is the API projection of a note
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TenderOfferResponse is the API projection of a tender offer
type TenderOfferResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProjectID uuid.UUID       `json:"project_id"`
	Bidder    string          `json:"bidder"`
	Amount    decimal.Decimal `json:"amount"`
	OfferDate *time.Time      `json:"offer_date"`
	CreatedAt time.Time       `json:"created_at"`
}

func toProjectSummaryResponse(p project.Project, now time.Time, staleAfter time.Duration) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		ID:            p.ID,
		Name:          p.Name,
		SiteCode:      p.SiteCode,
		Town:          p.Town,
		Postcode:      p.Postcode,
		Status:        p.Status.String(),
		Stage:         project.InferStage(&p).String(),
		Stalled:       project.IsStalled(&p, now, staleAfter),
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

func toProjectDetailResponse(p *project.Project) *ProjectDetailResponse {
	completeness := project.StageCompleteness(p)
	stageComplete := make(map[string]bool, len(completeness))
	for stage, done := range completeness {
		stageComplete[stage.String()] = done
	}

	return &ProjectDetailResponse{
		ID:            p.ID,
		Name:          p.Name,
		SiteCode:      p.SiteCode,
		Address:       p.Address,
		Town:          p.Town,
		Postcode:      p.Postcode,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Status:        p.Status.String(),
		Stage:         project.InferStage(p).String(),
		StageComplete: stageComplete,
		SurveyorNotes: p.SurveyorNotes,
		Commercial: CommercialSection{
			OfferAgreedDate:    p.OfferAgreedDate,
			ContractSignedDate: p.ContractSignedDate,
			LeasePerAnnum:      p.LeasePerAnnum,
			RentDeposit:        p.RentDeposit,
			RatesPerAnnum:      p.RatesPerAnnum,
			PowerPerAnnum:      p.PowerPerAnnum,
			InsurancePerAnnum:  p.InsurancePerAnnum,
			TermYears:          p.TermYears,
			RentReviewYears:    p.RentReviewYears,
			BreakClauseYears:   p.BreakClauseYears,
			Probability:        p.Probability,
			CommissionRate:     p.CommissionRate,
			CapexBudget:        p.CapexBudget,
			LandlordName:       p.LandlordName,
			LandlordAgent:      p.LandlordAgent,
		},
		Design: DesignSection{
			DesignRef:         p.DesignRef,
			DesignStatus:      p.DesignStatus,
			DesignSignedOff:   string(p.DesignSignedOff),
			DesignSignOffDate: p.DesignSignOffAt,
			DesignSignedOffBy: p.DesignSignedOffBy,
		},
		Planning: PlanningSection{
			PlanningStatusID:         p.PlanningStatusID,
			PlanningSubmittedDate:    p.PlanningSubmittedDate,
			PlanningRegisteredDate:   p.PlanningRegisteredDate,
			PlanningDeterminedDate:   p.PlanningDeterminedDate,
			PlanningAppealLodgedDate: p.PlanningAppealLodgedDate,
			PlanningAppealDecision:   p.PlanningAppealDecision,
			PlanningConditionsCount:  p.PlanningConditionsCount,
			AdvertStatusID:           p.AdvertStatusID,
			AdvertSubmittedDate:      p.AdvertSubmittedDate,
			AdvertRegisteredDate:     p.AdvertRegisteredDate,
			AdvertDeterminedDate:     p.AdvertDeterminedDate,
			AdvertAppealLodgedDate:   p.AdvertAppealLodgedDate,
			AdvertAppealDecision:     p.AdvertAppealDecision,
			AdvertConditionsCount:    p.AdvertConditionsCount,
			PlanningScore:            p.PlanningScore,
		},
		Marketing: MarketingSection{
			MediaOwnerID: p.MediaOwnerID,
			AgentID:      p.AgentID,
		},
		Build: BuildSection{
			BuildStartDate:      p.BuildStartDate,
			BuildCompletionDate: p.BuildCompletionDate,
			BuildLiveDate:       p.BuildLiveDate,
			ContractorName:      p.ContractorName,
			BuildNotes:          p.BuildNotes,
		},
		LastUpdatedAt: p.LastUpdatedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toTaskResponse(t project.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		Description:  t.Description,
		DueDate:      t.DueDate,
		Completed:    t.Completed,
		NeedsReview:  t.NeedsReview,
		Overdue:      t.IsOverdue(now),
		AssigneeID:   t.AssigneeID,
		AssignedByID: t.AssignedByID,
		CategoryID:   t.CategoryID,
		CreatedAt:    t.CreatedAt,
	}
}

func toPanelConfigResponse(pc project.PanelConfiguration) PanelConfigResponse {
	return PanelConfigResponse{
		ID:            pc.ID,
		ProjectID:     pc.ProjectID,
		PanelTypeID:   pc.PanelTypeID,
		PanelSizeID:   pc.PanelSizeID,
		OrientationID: pc.OrientationID,
		StructureID:   pc.StructureID,
		Digital:       string(pc.Digital),
		Illuminated:   string(pc.Illuminated),
		Sides:         pc.Sides,
		Quantity:      pc.Quantity,
		HeightMM:      pc.HeightMM,
		WidthMM:       pc.WidthMM,
	}
}

func toNoteResponse(n project.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		ProjectID: n.ProjectID,
		AuthorID:  n.AuthorID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

func toTenderOfferResponse(o project.TenderOffer) TenderOfferResponse {
	return TenderOfferResponse{
		ID:        o.ID,
		ProjectID: o.ProjectID,
		Bidder:    o.Bidder,
		Amount:    o.Amount,
		OfferDate: o.OfferDate,
		CreatedAt: o.CreatedAt,
	}
}
