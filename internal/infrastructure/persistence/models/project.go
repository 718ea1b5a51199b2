package models

import (
	"time"

	"github.com/devtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel is the persistence model for the Project domain entity.
// Column names are the section-contract column names, so reconciliation
// deltas apply directly without a mapping step. The stage is never stored.
type ProjectModel struct {
	BaseModel
	Name          string           `gorm:"type:varchar(200);not null"`
	SiteCode      string           `gorm:"type:varchar(50);index"`
	Address       string           `gorm:"type:text"`
	Town          string           `gorm:"type:varchar(100)"`
	Postcode      string           `gorm:"type:varchar(20)"`
	Latitude      *decimal.Decimal `gorm:"type:decimal(10,7)"`
	Longitude     *decimal.Decimal `gorm:"type:decimal(10,7)"`
	Status        string           `gorm:"type:varchar(20);not null;default:'active';index"`
	SurveyorNotes string           `gorm:"type:text"`

	OfferAgreedDate    *time.Time       `gorm:"type:date"`
	ContractSignedDate *time.Time       `gorm:"type:date"`
	LeasePerAnnum      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	RentDeposit        *decimal.Decimal `gorm:"type:decimal(18,2)"`
	RatesPerAnnum      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	PowerPerAnnum      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	InsurancePerAnnum  *decimal.Decimal `gorm:"type:decimal(18,2)"`
	TermYears          *int
	RentReviewYears    *int
	BreakClauseYears   *int
	Probability        *int
	CommissionRate     *decimal.Decimal `gorm:"type:decimal(8,4)"`
	CapexBudget        *decimal.Decimal `gorm:"type:decimal(18,2)"`
	LandlordName       string           `gorm:"type:varchar(200)"`
	LandlordAgent      string           `gorm:"type:varchar(200)"`

	DesignRef         string     `gorm:"type:varchar(100)"`
	DesignStatus      string     `gorm:"type:varchar(20)"`
	DesignSignedOff   string     `gorm:"type:varchar(3);not null;default:'TBC'"`
	DesignSignOffDate *time.Time `gorm:"column:design_sign_off_date;type:date"`
	DesignSignedOffBy string     `gorm:"type:varchar(100)"`

	PlanningStatusID         *uuid.UUID `gorm:"type:uuid"`
	PlanningSubmittedDate    *time.Time `gorm:"type:date"`
	PlanningRegisteredDate   *time.Time `gorm:"type:date"`
	PlanningDeterminedDate   *time.Time `gorm:"type:date"`
	PlanningAppealLodgedDate *time.Time `gorm:"type:date"`
	PlanningAppealDecision   string     `gorm:"type:varchar(100)"`
	PlanningConditionsCount  *int
	AdvertStatusID           *uuid.UUID `gorm:"type:uuid"`
	AdvertSubmittedDate      *time.Time `gorm:"type:date"`
	AdvertRegisteredDate     *time.Time `gorm:"type:date"`
	AdvertDeterminedDate     *time.Time `gorm:"type:date"`
	AdvertAppealLodgedDate   *time.Time `gorm:"type:date"`
	AdvertAppealDecision     string     `gorm:"type:varchar(100)"`
	AdvertConditionsCount    *int
	PlanningScore            *int

	MediaOwnerID *uuid.UUID `gorm:"type:uuid;index"`
	AgentID      *uuid.UUID `gorm:"type:uuid;index"`

	BuildStartDate      *time.Time `gorm:"type:date"`
	BuildCompletionDate *time.Time `gorm:"type:date"`
	BuildLiveDate       *time.Time `gorm:"type:date"`
	ContractorName      string     `gorm:"type:varchar(200)"`
	BuildNotes          string     `gorm:"type:text"`

	LastUpdatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		SiteCode:      m.SiteCode,
		Address:       m.Address,
		Town:          m.Town,
		Postcode:      m.Postcode,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		Status:        project.ProjectStatus(m.Status),
		SurveyorNotes: m.SurveyorNotes,

		OfferAgreedDate:    m.OfferAgreedDate,
		ContractSignedDate: m.ContractSignedDate,
		LeasePerAnnum:      m.LeasePerAnnum,
		RentDeposit:        m.RentDeposit,
		RatesPerAnnum:      m.RatesPerAnnum,
		PowerPerAnnum:      m.PowerPerAnnum,
		InsurancePerAnnum:  m.InsurancePerAnnum,
		TermYears:          m.TermYears,
		RentReviewYears:    m.RentReviewYears,
		BreakClauseYears:   m.BreakClauseYears,
		Probability:        m.Probability,
		CommissionRate:     m.CommissionRate,
		CapexBudget:        m.CapexBudget,
		LandlordName:       m.LandlordName,
		LandlordAgent:      m.LandlordAgent,

		DesignRef:         m.DesignRef,
		DesignStatus:      m.DesignStatus,
		DesignSignedOff:   project.SignOffFlag(m.DesignSignedOff),
		DesignSignOffAt:   m.DesignSignOffDate,
		DesignSignedOffBy: m.DesignSignedOffBy,

		PlanningStatusID:         m.PlanningStatusID,
		PlanningSubmittedDate:    m.PlanningSubmittedDate,
		PlanningRegisteredDate:   m.PlanningRegisteredDate,
		PlanningDeterminedDate:   m.PlanningDeterminedDate,
		PlanningAppealLodgedDate: m.PlanningAppealLodgedDate,
		PlanningAppealDecision:   m.PlanningAppealDecision,
		PlanningConditionsCount:  m.PlanningConditionsCount,
		AdvertStatusID:           m.AdvertStatusID,
		AdvertSubmittedDate:      m.AdvertSubmittedDate,
		AdvertRegisteredDate:     m.AdvertRegisteredDate,
		AdvertDeterminedDate:     m.AdvertDeterminedDate,
		AdvertAppealLodgedDate:   m.AdvertAppealLodgedDate,
		AdvertAppealDecision:     m.AdvertAppealDecision,
		AdvertConditionsCount:    m.AdvertConditionsCount,
		PlanningScore:            m.PlanningScore,

		MediaOwnerID: m.MediaOwnerID,
		AgentID:      m.AgentID,

		BuildStartDate:      m.BuildStartDate,
		BuildCompletionDate: m.BuildCompletionDate,
		BuildLiveDate:       m.BuildLiveDate,
		ContractorName:      m.ContractorName,
		BuildNotes:          m.BuildNotes,

		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.SiteCode = p.SiteCode
	m.Address = p.Address
	m.Town = p.Town
	m.Postcode = p.Postcode
	m.Latitude = p.Latitude
	m.Longitude = p.Longitude
	m.Status = p.Status.String()
	m.SurveyorNotes = p.SurveyorNotes

	m.OfferAgreedDate = p.OfferAgreedDate
	m.ContractSignedDate = p.ContractSignedDate
	m.LeasePerAnnum = p.LeasePerAnnum
	m.RentDeposit = p.RentDeposit
	m.RatesPerAnnum = p.RatesPerAnnum
	m.PowerPerAnnum = p.PowerPerAnnum
	m.InsurancePerAnnum = p.InsurancePerAnnum
	m.TermYears = p.TermYears
	m.RentReviewYears = p.RentReviewYears
	m.BreakClauseYears = p.BreakClauseYears
	m.Probability = p.Probability
	m.CommissionRate = p.CommissionRate
	m.CapexBudget = p.CapexBudget
	m.LandlordName = p.LandlordName
	m.LandlordAgent = p.LandlordAgent

	m.DesignRef = p.DesignRef
	m.DesignStatus = p.DesignStatus
	m.DesignSignedOff = string(p.DesignSignedOff)
	m.DesignSignOffDate = p.DesignSignOffAt
	m.DesignSignedOffBy = p.DesignSignedOffBy

	m.PlanningStatusID = p.PlanningStatusID
	m.PlanningSubmittedDate = p.PlanningSubmittedDate
	m.PlanningRegisteredDate = p.PlanningRegisteredDate
	m.PlanningDeterminedDate = p.PlanningDeterminedDate
	m.PlanningAppealLodgedDate = p.PlanningAppealLodgedDate
	m.PlanningAppealDecision = p.PlanningAppealDecision
	m.PlanningConditionsCount = p.PlanningConditionsCount
	m.AdvertStatusID = p.AdvertStatusID
	m.AdvertSubmittedDate = p.AdvertSubmittedDate
	m.AdvertRegisteredDate = p.AdvertRegisteredDate
	m.AdvertDeterminedDate = p.AdvertDeterminedDate
	m.AdvertAppealLodgedDate = p.AdvertAppealLodgedDate
	m.AdvertAppealDecision = p.AdvertAppealDecision
	m.AdvertConditionsCount = p.AdvertConditionsCount
	m.PlanningScore = p.PlanningScore

	m.MediaOwnerID = p.MediaOwnerID
	m.AgentID = p.AgentID

	m.BuildStartDate = p.BuildStartDate
	m.BuildCompletionDate = p.BuildCompletionDate
	m.BuildLiveDate = p.BuildLiveDate
	m.ContractorName = p.ContractorName
	m.BuildNotes = p.BuildNotes

	m.LastUpdatedAt = p.LastUpdatedAt
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// TaskModel is the persistence model for the Task domain entity.
type TaskModel struct {
	BaseModel
	ProjectID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Description  string     `gorm:"type:text;not null"`
	DueDate      *time.Time `gorm:"type:date"`
	Completed    bool       `gorm:"not null;default:false"`
	NeedsReview  bool       `gorm:"not null;default:false"`
	AssigneeID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedByID uuid.UUID  `gorm:"type:uuid"`
	CategoryID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *project.Task {
	return &project.Task{
		BaseEntity:   m.BaseModel.ToDomain(),
		ProjectID:    m.ProjectID,
		Description:  m.Description,
		DueDate:      m.DueDate,
		Completed:    m.Completed,
		NeedsReview:  m.NeedsReview,
		AssigneeID:   m.AssigneeID,
		AssignedByID: m.AssignedByID,
		CategoryID:   m.CategoryID,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *project.Task) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.ProjectID = t.ProjectID
	m.Description = t.Description
	m.DueDate = t.DueDate
	m.Completed = t.Completed
	m.NeedsReview = t.NeedsReview
	m.AssigneeID = t.AssigneeID
	m.AssignedByID = t.AssignedByID
	m.CategoryID = t.CategoryID
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *project.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}

// PanelConfigModel is the persistence model for the PanelConfiguration
// domain entity. Column names match the batch editor's field contract.
type PanelConfigModel struct {
	BaseModel
	ProjectID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	PanelTypeID   *uuid.UUID       `gorm:"type:uuid"`
	PanelSizeID   *uuid.UUID       `gorm:"type:uuid"`
	OrientationID *uuid.UUID       `gorm:"type:uuid"`
	StructureID   *uuid.UUID       `gorm:"type:uuid"`
	Digital       string           `gorm:"type:varchar(3);not null;default:'TBC'"`
	Illuminated   string           `gorm:"type:varchar(3);not null;default:'TBC'"`
	Sides         *int
	Quantity      *int
	HeightMM      *decimal.Decimal `gorm:"column:height_mm;type:decimal(10,2)"`
	WidthMM       *decimal.Decimal `gorm:"column:width_mm;type:decimal(10,2)"`
}

// TableName returns the table name for GORM
func (PanelConfigModel) TableName() string {
	return "panel_configurations"
}

// ToDomain converts the persistence model to a domain PanelConfiguration entity.
func (m *PanelConfigModel) ToDomain() *project.PanelConfiguration {
	return &project.PanelConfiguration{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProjectID:     m.ProjectID,
		PanelTypeID:   m.PanelTypeID,
		PanelSizeID:   m.PanelSizeID,
		OrientationID: m.OrientationID,
		StructureID:   m.StructureID,
		Digital:       project.SignOffFlag(m.Digital),
		Illuminated:   project.SignOffFlag(m.Illuminated),
		Sides:         m.Sides,
		Quantity:      m.Quantity,
		HeightMM:      m.HeightMM,
		WidthMM:       m.WidthMM,
	}
}

// FromDomain populates the persistence model from a domain PanelConfiguration entity.
func (m *PanelConfigModel) FromDomain(pc *project.PanelConfiguration) {
	m.FromDomainBaseEntity(pc.BaseEntity)
	m.ProjectID = pc.ProjectID
	m.PanelTypeID = pc.PanelTypeID
	m.PanelSizeID = pc.PanelSizeID
	m.OrientationID = pc.OrientationID
	m.StructureID = pc.StructureID
	m.Digital = string(pc.Digital)
	m.Illuminated = string(pc.Illuminated)
	m.Sides = pc.Sides
	m.Quantity = pc.Quantity
	m.HeightMM = pc.HeightMM
	m.WidthMM = pc.WidthMM
}

// PanelConfigModelFromDomain creates a new persistence model from a domain entity.
func PanelConfigModelFromDomain(pc *project.PanelConfiguration) *PanelConfigModel {
	m := &PanelConfigModel{}
	m.FromDomain(pc)
	return m
}

// NoteModel is the persistence model for the Note domain entity.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (NoteModel) TableName() string {
	return "notes"
}

// ToDomain converts the persistence model to a domain Note entity.
func (m *NoteModel) ToDomain() *project.Note {
	return &project.Note{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// NoteModelFromDomain creates a new persistence model from a domain Note entity.
func NoteModelFromDomain(n *project.Note) *NoteModel {
	return &NoteModel{
		ID:        n.ID,
		ProjectID: n.ProjectID,
		AuthorID:  n.AuthorID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

// TenderOfferModel is the persistence model for the TenderOffer domain entity.
type TenderOfferModel struct {
	BaseModel
	ProjectID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Bidder    string          `gorm:"type:varchar(200);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	OfferDate *time.Time      `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (TenderOfferModel) TableName() string {
	return "tender_offers"
}

// ToDomain converts the persistence model to a domain TenderOffer entity.
func (m *TenderOfferModel) ToDomain() *project.TenderOffer {
	return &project.TenderOffer{
		BaseEntity: m.BaseModel.ToDomain(),
		ProjectID:  m.ProjectID,
		Bidder:     m.Bidder,
		Amount:     m.Amount,
		OfferDate:  m.OfferDate,
	}
}

// TenderOfferModelFromDomain creates a new persistence model from a domain entity.
func TenderOfferModelFromDomain(o *project.TenderOffer) *TenderOfferModel {
	m := &TenderOfferModel{}
	m.FromDomainBaseEntity(o.BaseEntity)
	m.ProjectID = o.ProjectID
	m.Bidder = o.Bidder
	m.Amount = o.Amount
	m.OfferDate = o.OfferDate
	return m
}
