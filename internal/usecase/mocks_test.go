package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/matheuslc/prospectly/internal/entity"
	"github.com/matheuslc/prospectly/internal/infra/integration/textgen"
	"github.com/matheuslc/prospectly/internal/infra/queue"
)

type MockProspectRepository struct {
	mock.Mock
}

func (m *MockProspectRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Prospect, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) FindByID(ctx context.Context, id, userID string) (*entity.Prospect, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) Create(ctx context.Context, p *entity.Prospect) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProspectRepository) Update(ctx context.Context, p *entity.Prospect) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProspectRepository) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockEmailRepository struct {
	mock.Mock
}

func (m *MockEmailRepository) Create(ctx context.Context, e *entity.GeneratedEmail) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmailRepository) ListByProspect(ctx context.Context, prospectID string) ([]*entity.GeneratedEmail, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.GeneratedEmail), args.Error(1)
}

type MockEmailGenerator struct {
	mock.Mock
}

func (m *MockEmailGenerator) Generate(ctx context.Context, input textgen.PromptInput) (textgen.EmailDraft, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(textgen.EmailDraft), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishEmailGenerated(ctx context.Context, payload queue.EmailGeneratedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
