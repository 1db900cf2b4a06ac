package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/matheuslc/prospectly/internal/entity"
)

type ProspectUseCase struct {
	Repo      ProspectRepositoryInterface
	EmailRepo EmailRepositoryInterface
}

func NewProspectUseCase(repo ProspectRepositoryInterface, emailRepo EmailRepositoryInterface) *ProspectUseCase {
	return &ProspectUseCase{
		Repo:      repo,
		EmailRepo: emailRepo,
	}
}

func (uc *ProspectUseCase) List(ctx context.Context, userID string) ([]*entity.Prospect, error) {
	return uc.Repo.ListByUser(ctx, userID)
}

// Get returns the prospect with its full email history, newest first.
func (uc *ProspectUseCase) Get(ctx context.Context, id, userID string) (*entity.Prospect, error) {
	prospect, err := uc.Repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	emails, err := uc.EmailRepo.ListByProspect(ctx, prospect.ID)
	if err != nil {
		return nil, err
	}
	prospect.Emails = emails

	return prospect, nil
}

func (uc *ProspectUseCase) Create(ctx context.Context, userID string, input CreateProspectInput) (*entity.Prospect, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	prospect, err := entity.NewProspect(
		userID,
		input.Name,
		input.Company,
		input.Role,
		normalizeOptional(input.Industry),
		normalizeOptional(input.PainPoints),
		normalizeOptional(input.LinkedinURL),
		normalizeOptional(input.Email),
	)
	if err != nil {
		return nil, ValidationError{Field: "prospect", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, prospect); err != nil {
		return nil, err
	}

	return prospect, nil
}

func (uc *ProspectUseCase) Update(ctx context.Context, id, userID string, input UpdateProspectInput) (*entity.Prospect, error) {
	prospect, err := uc.Repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Required fields fall back to the stored value when the incoming value
	// is absent or empty; they can never be cleared through an update.
	if input.Name != nil && *input.Name != "" {
		prospect.Name = *input.Name
	}
	if input.Company != nil && *input.Company != "" {
		prospect.Company = *input.Company
	}
	if input.Role != nil && *input.Role != "" {
		prospect.Role = *input.Role
	}
	if input.Status != nil && *input.Status != "" {
		if !entity.ValidStatus(*input.Status) {
			return nil, ValidationError{Field: "status", Message: "must be one of new, contacted, replied, converted"}
		}
		prospect.Status = *input.Status
	}

	// Optional fields: omitted keeps the stored value, null clears it.
	if input.Industry.Set {
		prospect.Industry = input.Industry.Value
	}
	if input.PainPoints.Set {
		prospect.PainPoints = input.PainPoints.Value
	}
	if input.LinkedinURL.Set {
		prospect.LinkedinURL = input.LinkedinURL.Value
	}
	if input.Email.Set {
		prospect.Email = input.Email.Value
	}

	prospect.UpdatedAt = time.Now().UTC()

	if err := uc.Repo.Update(ctx, prospect); err != nil {
		return nil, err
	}

	return prospect, nil
}

// Delete removes the prospect; generated emails go with it via the cascade on
// the foreign key.
func (uc *ProspectUseCase) Delete(ctx context.Context, id, userID string) error {
	if _, err := uc.Repo.FindByID(ctx, id, userID); err != nil {
		return err
	}
	return uc.Repo.Delete(ctx, id, userID)
}

func validateCreateInput(input CreateProspectInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ValidationError{Field: "name", Message: "is required"}
	}
	if strings.TrimSpace(input.Company) == "" {
		return ValidationError{Field: "company", Message: "is required"}
	}
	if strings.TrimSpace(input.Role) == "" {
		return ValidationError{Field: "role", Message: "is required"}
	}
	return nil
}

// normalizeOptional maps empty strings to NULL so that optional fields are
// either present with content or absent, never stored as "".
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
