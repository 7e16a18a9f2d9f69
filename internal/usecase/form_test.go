package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avirani/leadscore/internal/infra/memory"
	"github.com/avirani/leadscore/internal/usecase"
)

func fillValidDraft(t *testing.T, form *usecase.LeadForm) {
	t.Helper()
	fields := map[string]string{
		"phone":            "+91-9876543210",
		"email":            "lead@example.com",
		"creditScore":      "700",
		"ageGroup":         "18-25",
		"maritalStatus":    "Single",
		"annualIncome":     "50000",
		"netWorth":         "100000",
		"employmentStatus": "Employed",
		"comments":         "call me asap",
		"consent":          "true",
	}
	for name, value := range fields {
		assert.NoError(t, form.UpdateField(name, value))
	}
}

func TestUpdateFieldParsesValues(t *testing.T) {
	form := usecase.NewLeadForm(nil)
	fillValidDraft(t, form)

	draft := form.Draft()
	assert.Equal(t, "+91-9876543210", draft.Phone)
	assert.Equal(t, "lead@example.com", draft.Email)
	assert.Equal(t, 700, *draft.CreditScore)
	assert.Equal(t, "18-25", draft.AgeGroup)
	assert.Equal(t, 50000.0, *draft.AnnualIncome)
	assert.Equal(t, 100000.0, *draft.NetWorth)
	assert.True(t, draft.Consent)
}

func TestUpdateFieldRejectsUnknownField(t *testing.T) {
	form := usecase.NewLeadForm(nil)

	err := form.UpdateField("favoriteColor", "blue")

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, "UNKNOWN_FIELD", err.(*usecase.DomainError).Code)
}

func TestUpdateFieldRejectsBadNumbers(t *testing.T) {
	form := usecase.NewLeadForm(nil)

	assert.Error(t, form.UpdateField("creditScore", "seven hundred"))
	assert.Error(t, form.UpdateField("annualIncome", "a lot"))
	assert.Error(t, form.UpdateField("consent", "yep"))

	// A rejected value leaves the draft untouched.
	draft := form.Draft()
	assert.Nil(t, draft.CreditScore)
	assert.Nil(t, draft.AnnualIncome)
	assert.False(t, draft.Consent)
}

func TestUpdateFieldReplacesPreviousValue(t *testing.T) {
	form := usecase.NewLeadForm(nil)

	assert.NoError(t, form.UpdateField("email", "first@example.com"))
	assert.NoError(t, form.UpdateField("email", "second@example.com"))

	assert.Equal(t, "second@example.com", form.Draft().Email)
}

func TestResetClearsDraft(t *testing.T) {
	form := usecase.NewLeadForm(nil)
	fillValidDraft(t, form)

	form.Reset()

	assert.Equal(t, usecase.CaptureLeadInput{}, form.Draft())
}

func TestSubmitResetsDraftOnSuccess(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockGateway.On("Score", ctx, mock.Anything).Return(scoreResult(90, 100), nil)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)
	form := usecase.NewLeadForm(uc)
	fillValidDraft(t, form)

	lead, err := form.Submit(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, usecase.CaptureLeadInput{}, form.Draft())
}

func TestSubmitPreservesDraftOnValidationFailure(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)
	form := usecase.NewLeadForm(uc)
	fillValidDraft(t, form)
	assert.NoError(t, form.UpdateField("email", "not-an-email"))

	lead, err := form.Submit(ctx)

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.Equal(t, 0, store.Len())

	// The draft survives so the caller can fix the one bad field.
	draft := form.Draft()
	assert.Equal(t, "not-an-email", draft.Email)
	assert.Equal(t, 700, *draft.CreditScore)
}

func TestSubmitPreservesDraftOnScoringFailure(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)
	mockGateway.On("Score", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)
	form := usecase.NewLeadForm(uc)
	fillValidDraft(t, form)

	lead, err := form.Submit(ctx)

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, usecase.IsTechnicalError(err))
	assert.Equal(t, "lead@example.com", form.Draft().Email)

	// A fixed draft goes through on the next attempt.
	mockGateway.ExpectedCalls = nil
	mockGateway.On("Score", ctx, mock.Anything).Return(scoreResult(90, 100), nil)

	lead, err = form.Submit(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, 1, store.Len())
}

func TestSubmitConsentGate(t *testing.T) {
	ctx := context.Background()

	store := memory.NewLeadStore()
	mockGateway := new(MockScoringGateway)

	uc := usecase.NewCaptureLeadUseCase(store, mockGateway, nil)
	form := usecase.NewLeadForm(uc)
	fillValidDraft(t, form)
	assert.NoError(t, form.UpdateField("consent", "false"))

	lead, err := form.Submit(ctx)

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.Equal(t, "CONSENT_REQUIRED", err.(*usecase.DomainError).Code)
	assert.Equal(t, 0, store.Len())
	mockGateway.AssertNotCalled(t, "Score")
}
