package usecase

import (
	"context"

	"github.com/matheuslc/prospectly/internal/entity"
	"github.com/matheuslc/prospectly/internal/infra/integration/textgen"
	"github.com/matheuslc/prospectly/internal/infra/queue"
)

type ProspectRepositoryInterface interface {
	// ListByUser returns the user's prospects newest-first, each carrying at
	// most its single most recent generated email.
	ListByUser(ctx context.Context, userID string) ([]*entity.Prospect, error)
	// FindByID is owner-scoped: a prospect owned by another user behaves
	// exactly like a missing row.
	FindByID(ctx context.Context, id, userID string) (*entity.Prospect, error)
	Create(ctx context.Context, p *entity.Prospect) error
	Update(ctx context.Context, p *entity.Prospect) error
	Delete(ctx context.Context, id, userID string) error
}

type EmailRepositoryInterface interface {
	Create(ctx context.Context, e *entity.GeneratedEmail) error
	// ListByProspect returns emails newest-first.
	ListByProspect(ctx context.Context, prospectID string) ([]*entity.GeneratedEmail, error)
}

type EmailGenerator interface {
	Generate(ctx context.Context, input textgen.PromptInput) (textgen.EmailDraft, error)
}

type QueueProducerInterface interface {
	PublishEmailGenerated(ctx context.Context, payload queue.EmailGeneratedPayload) error
}
