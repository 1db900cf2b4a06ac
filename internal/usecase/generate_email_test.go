package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matheuslc/prospectly/internal/infra/integration/textgen"
)

func TestGenerateEmailSuccess(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	emailRepo := new(MockEmailRepository)
	generator := new(MockEmailGenerator)
	producer := new(MockQueueProducer)

	stored := storedProspect()
	prospectRepo.On("FindByID", mock.Anything, "prospect-1", "user-1").Return(stored, nil)
	generator.On("Generate", mock.Anything, textgen.PromptInput{
		Name:       stored.Name,
		Company:    stored.Company,
		Role:       stored.Role,
		Industry:   stored.Industry,
		PainPoints: stored.PainPoints,
	}).Return(textgen.EmailDraft{Subject: "Hi", Body: "Hello there"}, nil)
	emailRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishEmailGenerated", mock.Anything, mock.Anything).Return(nil)

	uc := NewGenerateEmailUseCase(prospectRepo, emailRepo, generator, producer)

	email, err := uc.Execute(context.Background(), "prospect-1", "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, email.ID)
	assert.Equal(t, "prospect-1", email.ProspectID)
	assert.Equal(t, "Hi", email.Subject)
	assert.Equal(t, "Hello there", email.Body)
	assert.False(t, email.CreatedAt.IsZero())
	producer.AssertCalled(t, "PublishEmailGenerated", mock.Anything, mock.Anything)
}

func TestGenerateEmailProspectNotOwned(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	emailRepo := new(MockEmailRepository)
	generator := new(MockEmailGenerator)

	prospectRepo.On("FindByID", mock.Anything, "prospect-1", "other-user").Return(nil, ErrNotFound)

	uc := NewGenerateEmailUseCase(prospectRepo, emailRepo, generator, nil)

	_, err := uc.Execute(context.Background(), "prospect-1", "other-user")

	assert.ErrorIs(t, err, ErrNotFound)
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	emailRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerateEmailExternalCallFails(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	emailRepo := new(MockEmailRepository)
	generator := new(MockEmailGenerator)

	prospectRepo.On("FindByID", mock.Anything, "prospect-1", "user-1").Return(storedProspect(), nil)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return(textgen.EmailDraft{}, errors.New("quota exceeded"))

	uc := NewGenerateEmailUseCase(prospectRepo, emailRepo, generator, nil)

	_, err := uc.Execute(context.Background(), "prospect-1", "user-1")

	assert.True(t, IsGenerationError(err))
	emailRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerateEmailPersistenceFails(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	emailRepo := new(MockEmailRepository)
	generator := new(MockEmailGenerator)

	prospectRepo.On("FindByID", mock.Anything, "prospect-1", "user-1").Return(storedProspect(), nil)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return(textgen.EmailDraft{Subject: "Hi", Body: "Hello"}, nil)
	emailRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("fk violation"))

	uc := NewGenerateEmailUseCase(prospectRepo, emailRepo, generator, nil)

	_, err := uc.Execute(context.Background(), "prospect-1", "user-1")

	assert.True(t, IsGenerationError(err))
}

func TestGenerateEmailPublishFailureDoesNotFailRequest(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	emailRepo := new(MockEmailRepository)
	generator := new(MockEmailGenerator)
	producer := new(MockQueueProducer)

	prospectRepo.On("FindByID", mock.Anything, "prospect-1", "user-1").Return(storedProspect(), nil)
	generator.On("Generate", mock.Anything, mock.Anything).
		Return(textgen.EmailDraft{Subject: "Hi", Body: "Hello"}, nil)
	emailRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishEmailGenerated", mock.Anything, mock.Anything).
		Return(errors.New("broker gone"))

	uc := NewGenerateEmailUseCase(prospectRepo, emailRepo, generator, producer)

	email, err := uc.Execute(context.Background(), "prospect-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Hi", email.Subject)
}
