package project

import (
	"time"

	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Note is a free-text activity entry on a project, time-ordered
type Note struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
}

// NewNote creates a note on a project
func NewNote(projectID, authorID uuid.UUID, body string) (*Note, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}
	if body == "" {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note body cannot be empty")
	}
	return &Note{
		ID:        uuid.New(),
		ProjectID: projectID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// TenderOffer is a marketing-stage bid received for a site
type TenderOffer struct {
	shared.BaseEntity
	ProjectID uuid.UUID
	Bidder    string
	Amount    decimal.Decimal
	OfferDate *time.Time
}

// NewTenderOffer records a bid against a project
func NewTenderOffer(projectID uuid.UUID, bidder string, amount decimal.Decimal, offerDate *time.Time) (*TenderOffer, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}
	if bidder == "" {
		return nil, shared.NewDomainError("INVALID_BIDDER", "Bidder cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Offer amount cannot be negative")
	}
	return &TenderOffer{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		Bidder:     bidder,
		Amount:     amount,
		OfferDate:  offerDate,
	}, nil
}
