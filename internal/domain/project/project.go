package project

import (
	"time"

	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus represents the administrative status of a project,
// independent of its inferred lifecycle stage. A parked project keeps its
// stage but is excluded from staleness reporting.
type ProjectStatus string

const (
	ProjectStatusActive  ProjectStatus = "active"
	ProjectStatusOnHold  ProjectStatus = "on_hold"
	ProjectStatusDropped ProjectStatus = "dropped"
)

// IsValid checks if the status is a valid ProjectStatus
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusDropped:
		return true
	}
	return false
}

// String returns the string representation of ProjectStatus
func (s ProjectStatus) String() string {
	return string(s)
}

// SignOffFlag is a three-state Yes/No/TBC flag
type SignOffFlag string

const (
	SignOffYes SignOffFlag = "Yes"
	SignOffNo  SignOffFlag = "No"
	SignOffTBC SignOffFlag = "TBC"
)

// Project is an advertising-site development tracked through the lifecycle.
// The current stage is never stored: it is inferred from which of these
// fields are populated (see InferStage). Fields are grouped by the section
// that owns them in the update contract; a section's reconciliation never
// writes another section's fields.
type Project struct {
	shared.BaseEntity

	// Identity / survey
	Name          string
	SiteCode      string
	Address       string
	Town          string
	Postcode      string
	Latitude      *decimal.Decimal
	Longitude     *decimal.Decimal
	Status        ProjectStatus
	SurveyorNotes string

	// Commercial
	OfferAgreedDate    *time.Time
	ContractSignedDate *time.Time
	LeasePerAnnum      *decimal.Decimal
	RentDeposit        *decimal.Decimal
	RatesPerAnnum      *decimal.Decimal
	PowerPerAnnum      *decimal.Decimal
	InsurancePerAnnum  *decimal.Decimal
	TermYears          *int
	RentReviewYears    *int
	BreakClauseYears   *int
	Probability        *int
	CommissionRate     *decimal.Decimal
	CapexBudget        *decimal.Decimal
	LandlordName       string
	LandlordAgent      string

	// Design
	DesignRef         string
	DesignStatus      string
	DesignSignedOff   SignOffFlag
	DesignSignOffAt   *time.Time
	DesignSignedOffBy string

	// Planning - two independent consent applications
	PlanningStatusID         *uuid.UUID
	PlanningSubmittedDate    *time.Time
	PlanningRegisteredDate   *time.Time
	PlanningDeterminedDate   *time.Time
	PlanningAppealLodgedDate *time.Time
	PlanningAppealDecision   string
	PlanningConditionsCount  *int
	AdvertStatusID           *uuid.UUID
	AdvertSubmittedDate      *time.Time
	AdvertRegisteredDate     *time.Time
	AdvertDeterminedDate     *time.Time
	AdvertAppealLodgedDate   *time.Time
	AdvertAppealDecision     string
	AdvertConditionsCount    *int
	PlanningScore            *int

	// Marketing
	MediaOwnerID *uuid.UUID
	AgentID      *uuid.UUID

	// Build
	BuildStartDate      *time.Time
	BuildCompletionDate *time.Time
	BuildLiveDate       *time.Time
	ContractorName      string
	BuildNotes          string

	// Touched by every successful reconciliation commit; drives staleness
	LastUpdatedAt time.Time
}

// NewProject creates a new project in the survey stage
func NewProject(name, siteCode, address, town, postcode string) (*Project, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}

	base := shared.NewBaseEntity()
	return &Project{
		BaseEntity:      base,
		Name:            name,
		SiteCode:        siteCode,
		Address:         address,
		Town:            town,
		Postcode:        postcode,
		Status:          ProjectStatusActive,
		DesignSignedOff: SignOffTBC,
		LastUpdatedAt:   base.CreatedAt,
	}, nil
}

// Touch records activity on the project
func (p *Project) Touch(now time.Time) {
	p.LastUpdatedAt = now
	p.UpdatedAt = now
}

// IsParked reports whether the project has been deliberately shelved
func (p *Project) IsParked() bool {
	return p.Status == ProjectStatusOnHold || p.Status == ProjectStatusDropped
}

// SetStatus changes the administrative status
func (p *Project) SetStatus(status ProjectStatus, now time.Time) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown project status")
	}
	p.Status = status
	p.Touch(now)
	return nil
}
