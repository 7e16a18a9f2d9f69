package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avirani/leadscore/internal/entity"
	"github.com/avirani/leadscore/internal/infra/integration/scoring"
	"github.com/avirani/leadscore/internal/infra/memory"
	"github.com/avirani/leadscore/internal/infra/queue"
	"github.com/avirani/leadscore/internal/usecase"
)

// MockScoringGateway
type MockScoringGateway struct {
	mock.Mock
}

func (m *MockScoringGateway) Score(ctx context.Context, input scoring.ScoreInput) (*scoring.ScoreResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scoring.ScoreResult), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func validInput() usecase.CaptureLeadInput {
	return usecase.CaptureLeadInput{
		Phone:            "+91-9876543210",
		Email:            "lead@example.com",
		CreditScore:      intPtr(700),
		AgeGroup:         "18-25",
		MaritalStatus:    "Single",
		AnnualIncome:     floatPtr(50000),
		NetWorth:         floatPtr(100000),
		EmploymentStatus: "Employed",
		Comments:         "very interested",
		Consent:          true,
	}
}

func scoreResult(initial, reranked float64) *scoring.ScoreResult {
	return &scoring.ScoreResult{
		InitialScore:  floatPtr(initial),
		RerankedScore: floatPtr(reranked),
	}
}

func TestCaptureLeadSuccess(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockQueue := new(MockQueueProducer)

	mockGateway.On("Score", ctx, mock.Anything).Return(scoreResult(90, 100), nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, mockQueue)

	lead, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "lead@example.com", lead.Email)
	assert.Equal(t, 700, lead.CreditScore)
	assert.Equal(t, 90.0, *lead.InitialScore)
	assert.Equal(t, 100.0, *lead.RerankedScore)
	assert.False(t, lead.CreatedAt.IsZero())

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, lead.ID, store.List()[0].ID)

	mockGateway.AssertCalled(t, "Score", ctx, mock.Anything)
	mockQueue.AssertCalled(t, "PublishLeadCaptured", ctx, mock.Anything)
}

func TestCaptureLeadAppendsInSubmissionOrder(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockGateway.On("Score", ctx, mock.Anything).Return(scoreResult(50, 60), nil)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)

	first, err := uc.Execute(ctx, validInput())
	assert.NoError(t, err)

	second := validInput()
	second.Email = "another@example.com"
	secondLead, err := uc.Execute(ctx, second)
	assert.NoError(t, err)

	leads := store.List()
	assert.Equal(t, first.ID, leads[0].ID)
	assert.Equal(t, secondLead.ID, leads[1].ID)
}

func TestCaptureLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)

	input := validInput()
	input.Email = ""

	lead, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, usecase.IsDomainError(err))

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	assert.NotEmpty(t, domainErr.Details)
	assert.Equal(t, "email", domainErr.Details[0].Field)

	assert.Equal(t, 0, store.Len())
	mockGateway.AssertNotCalled(t, "Score")
}

func TestCaptureLeadRejectsOutOfRangeCreditScore(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)

	input := validInput()
	input.CreditScore = intPtr(900)

	lead, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, 0, store.Len())
}

func TestCaptureLeadConsentRequired(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockQueue := new(MockQueueProducer)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, mockQueue)

	input := validInput()
	input.Consent = false

	lead, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, lead)

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "CONSENT_REQUIRED", domainErr.Code)

	// A lead without consent must never reach the store or the scorer.
	assert.Equal(t, 0, store.Len())
	mockGateway.AssertNotCalled(t, "Score")
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}

func TestCaptureLeadScoringFailure(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockQueue := new(MockQueueProducer)

	mockGateway.On("Score", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, mockQueue)

	lead, err := uc.Execute(ctx, validInput())

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, usecase.IsTechnicalError(err))

	techErr, ok := err.(*usecase.TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, "SCORING_UNAVAILABLE", techErr.Code)

	// A failed scoring call leaves the table untouched.
	assert.Equal(t, 0, store.Len())
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}

func TestCaptureLeadWithoutQueue(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockGateway.On("Score", ctx, mock.Anything).Return(scoreResult(90, 100), nil)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)

	lead, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, 1, store.Len())
}

func TestCaptureLeadSurvivesPublishFailure(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockQueue := new(MockQueueProducer)

	mockGateway.On("Score", ctx, mock.Anything).Return(scoreResult(90, 100), nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(errors.New("broker unreachable"))

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, mockQueue)

	lead, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, 1, store.Len())
}

func TestCaptureLeadKeepsNullRerankedScore(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockGateway.On("Score", ctx, mock.Anything).Return(&scoring.ScoreResult{
		InitialScore: floatPtr(80),
	}, nil)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)

	lead, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.Equal(t, 80.0, *lead.InitialScore)
	assert.Nil(t, lead.RerankedScore)
	assert.Equal(t, entity.ScoreTagNA, entity.ScoreTag(lead.RerankedScore))
}
