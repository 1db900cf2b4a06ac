package usecase

import (
	"context"
	"log"

	"github.com/matheuslc/prospectly/internal/entity"
	"github.com/matheuslc/prospectly/internal/infra/http/middleware"
	"github.com/matheuslc/prospectly/internal/infra/integration/textgen"
	"github.com/matheuslc/prospectly/internal/infra/queue"
)

type GenerateEmailUseCase struct {
	ProspectRepo ProspectRepositoryInterface
	EmailRepo    EmailRepositoryInterface
	Generator    EmailGenerator
	Queue        QueueProducerInterface
}

func NewGenerateEmailUseCase(
	prospectRepo ProspectRepositoryInterface,
	emailRepo EmailRepositoryInterface,
	generator EmailGenerator,
	producer QueueProducerInterface,
) *GenerateEmailUseCase {
	return &GenerateEmailUseCase{
		ProspectRepo: prospectRepo,
		EmailRepo:    emailRepo,
		Generator:    generator,
		Queue:        producer,
	}
}

// Execute loads the prospect scoped to the caller, asks the text-generation
// client for a draft and persists it. The email row is only written after a
// draft was produced; any failure past the load surfaces as a GenerationError
// and leaves no partial state.
func (uc *GenerateEmailUseCase) Execute(ctx context.Context, prospectID, userID string) (*entity.GeneratedEmail, error) {
	prospect, err := uc.ProspectRepo.FindByID(ctx, prospectID, userID)
	if err != nil {
		return nil, err
	}

	draft, err := uc.Generator.Generate(ctx, textgen.PromptInput{
		Name:       prospect.Name,
		Company:    prospect.Company,
		Role:       prospect.Role,
		Industry:   prospect.Industry,
		PainPoints: prospect.PainPoints,
	})
	if err != nil {
		middleware.RecordGenerationFailure("generate")
		return nil, &GenerationError{Err: err}
	}

	email := entity.NewGeneratedEmail(prospect.ID, draft.Subject, draft.Body)
	if err := uc.EmailRepo.Create(ctx, email); err != nil {
		middleware.RecordGenerationFailure("persist")
		return nil, &GenerationError{Err: err}
	}

	middleware.RecordEmailGenerated()

	if uc.Queue != nil {
		payload := queue.EmailGeneratedPayload{
			EmailID:    email.ID,
			ProspectID: prospect.ID,
			UserID:     prospect.UserID,
			Subject:    email.Subject,
			CreatedAt:  email.CreatedAt,
		}
		if err := uc.Queue.PublishEmailGenerated(ctx, payload); err != nil {
			log.Printf("failed to publish email.generated event: %v", err)
		}
	}

	return email, nil
}
