package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Prospect statuses. The field is advisory bookkeeping: any status may be set
// from any other, there is no guarded workflow.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusReplied   = "replied"
	StatusConverted = "converted"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusReplied, StatusConverted:
		return true
	}
	return false
}

// Prospect is a sales contact owned by exactly one user. Every read and write
// must be filtered by UserID; a prospect owned by someone else is
// indistinguishable from one that does not exist.
type Prospect struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Industry    *string   `json:"industry"`
	PainPoints  *string   `json:"painPoints"`
	LinkedinURL *string   `json:"linkedinUrl"`
	Email       *string   `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Emails []*GeneratedEmail `json:"emails"`
}

func NewProspect(userID, name, company, role string, industry, painPoints, linkedinURL, email *string) (*Prospect, error) {
	now := time.Now().UTC()
	p := &Prospect{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Company:     company,
		Role:        role,
		Industry:    industry,
		PainPoints:  painPoints,
		LinkedinURL: linkedinURL,
		Email:       email,
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
		Emails:      []*GeneratedEmail{},
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prospect) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Company == "" {
		return errors.New("company is required")
	}
	if p.Role == "" {
		return errors.New("role is required")
	}
	if !ValidStatus(p.Status) {
		return errors.New("invalid status")
	}
	return nil
}
