package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/matheuslc/prospectly/internal/entity"
)

// ErrProspectGone is returned when the parent prospect was deleted between
// loading it and persisting the generated email. The generate flow runs
// without a wrapping transaction, so the foreign key is the backstop.
var ErrProspectGone = errors.New("prospect no longer exists")

type EmailRepository struct {
	DB *sql.DB
}

func NewEmailRepository(db *sql.DB) *EmailRepository {
	return &EmailRepository{DB: db}
}

func (r *EmailRepository) Create(ctx context.Context, e *entity.GeneratedEmail) error {
	query := `
		INSERT INTO generated_emails (id, prospect_id, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.ProspectID,
		e.Subject,
		e.Body,
		e.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrProspectGone
		}
		return fmt.Errorf("failed to save generated email: %w", err)
	}

	return nil
}

func (r *EmailRepository) ListByProspect(ctx context.Context, prospectID string) ([]*entity.GeneratedEmail, error) {
	query := `
		SELECT id, prospect_id, subject, body, created_at
		FROM generated_emails
		WHERE prospect_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, prospectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated emails: %w", err)
	}
	defer rows.Close()

	emails := []*entity.GeneratedEmail{}
	for rows.Next() {
		var e entity.GeneratedEmail
		if err := rows.Scan(&e.ID, &e.ProspectID, &e.Subject, &e.Body, &e.CreatedAt); err != nil {
			return nil, err
		}
		emails = append(emails, &e)
	}

	return emails, rows.Err()
}
