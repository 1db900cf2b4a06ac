package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/matheuslc/prospectly/internal/entity"
	"github.com/matheuslc/prospectly/internal/usecase"
)

type ProspectRepository struct {
	DB *sql.DB
}

func NewProspectRepository(db *sql.DB) *ProspectRepository {
	return &ProspectRepository{DB: db}
}

const prospectColumns = `id, user_id, name, company, role, industry, pain_points, linkedin_url, email, status, created_at, updated_at`

// ListByUser returns the user's prospects newest-first. A second query picks
// the single most recent email per prospect (DISTINCT ON keeps the first row
// of each prospect_id group, which the ORDER BY makes the newest).
func (r *ProspectRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Prospect, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM prospects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, prospectColumns)

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospects: %w", err)
	}
	defer rows.Close()

	prospects := []*entity.Prospect{}
	byID := map[string]*entity.Prospect{}

	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, err
		}
		prospects = append(prospects, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(prospects) == 0 {
		return prospects, nil
	}

	latest := `
		SELECT DISTINCT ON (e.prospect_id)
			e.id, e.prospect_id, e.subject, e.body, e.created_at
		FROM generated_emails e
		JOIN prospects p ON p.id = e.prospect_id
		WHERE p.user_id = $1
		ORDER BY e.prospect_id, e.created_at DESC
	`

	emailRows, err := r.DB.QueryContext(ctx, latest, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest emails: %w", err)
	}
	defer emailRows.Close()

	for emailRows.Next() {
		var e entity.GeneratedEmail
		if err := emailRows.Scan(&e.ID, &e.ProspectID, &e.Subject, &e.Body, &e.CreatedAt); err != nil {
			return nil, err
		}
		if p, ok := byID[e.ProspectID]; ok {
			p.Emails = []*entity.GeneratedEmail{&e}
		}
	}
	if err := emailRows.Err(); err != nil {
		return nil, err
	}

	return prospects, nil
}

func (r *ProspectRepository) FindByID(ctx context.Context, id, userID string) (*entity.Prospect, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM prospects
		WHERE id = $1 AND user_id = $2
	`, prospectColumns)

	p, err := scanProspect(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProspectRepository) Create(ctx context.Context, p *entity.Prospect) error {
	query := `
		INSERT INTO prospects (id, user_id, name, company, role, industry, pain_points, linkedin_url, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.Name,
		p.Company,
		p.Role,
		p.Industry,
		p.PainPoints,
		p.LinkedinURL,
		p.Email,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create prospect: %w", err)
	}

	return nil
}

func (r *ProspectRepository) Update(ctx context.Context, p *entity.Prospect) error {
	query := `
		UPDATE prospects
		SET name = $1, company = $2, role = $3, industry = $4, pain_points = $5,
			linkedin_url = $6, email = $7, status = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
	`

	result, err := r.DB.ExecContext(ctx, query,
		p.Name,
		p.Company,
		p.Role,
		p.Industry,
		p.PainPoints,
		p.LinkedinURL,
		p.Email,
		p.Status,
		p.UpdatedAt,
		p.ID,
		p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update prospect: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return usecase.ErrNotFound
	}

	return nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM prospects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete prospect: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return usecase.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProspect(row rowScanner) (*entity.Prospect, error) {
	var p entity.Prospect
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Company,
		&p.Role,
		&p.Industry,
		&p.PainPoints,
		&p.LinkedinURL,
		&p.Email,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Emails = []*entity.GeneratedEmail{}
	return &p, nil
}
