package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedEmail is an AI-drafted subject/body pair attached to a prospect.
// Rows are immutable once written: they are only ever read, or removed when
// the parent prospect is deleted.
type GeneratedEmail struct {
	ID         string    `json:"id"`
	ProspectID string    `json:"prospectId"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewGeneratedEmail(prospectID, subject, body string) *GeneratedEmail {
	return &GeneratedEmail{
		ID:         uuid.New().String(),
		ProspectID: prospectID,
		Subject:    subject,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
}
