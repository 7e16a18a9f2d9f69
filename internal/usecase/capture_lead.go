package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/avirani/leadscore/internal/entity"
	"github.com/avirani/leadscore/internal/infra/integration/scoring"
	"github.com/avirani/leadscore/internal/infra/queue"
)

// Execute runs the capture pipeline for one submission: field validation,
// the consent gate, a single scoring request, then the append. The lead is
// only appended after scoring succeeds, so the store never holds an
// unscored record.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "lead submission failed validation",
			Details: validationErrors,
		}
	}

	if !input.Consent {
		return nil, &DomainError{
			Code:    "CONSENT_REQUIRED",
			Message: "consent is required before a lead can be submitted",
		}
	}

	result, err := uc.Gateway.Score(ctx, scoring.ScoreInput{
		Phone:            input.Phone,
		Email:            input.Email,
		CreditScore:      *input.CreditScore,
		AgeGroup:         input.AgeGroup,
		MaritalStatus:    input.MaritalStatus,
		AnnualIncome:     *input.AnnualIncome,
		NetWorth:         *input.NetWorth,
		EmploymentStatus: input.EmploymentStatus,
		Comments:         input.Comments,
		Consent:          input.Consent,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    "SCORING_UNAVAILABLE",
			Message: "scoring request failed: " + err.Error(),
		}
	}

	lead := entity.Lead{
		ID:               uuid.New().String(),
		Phone:            input.Phone,
		Email:            input.Email,
		CreditScore:      *input.CreditScore,
		AgeGroup:         input.AgeGroup,
		MaritalStatus:    input.MaritalStatus,
		AnnualIncome:     *input.AnnualIncome,
		NetWorth:         *input.NetWorth,
		EmploymentStatus: input.EmploymentStatus,
		Comments:         input.Comments,
		Consent:          input.Consent,
		InitialScore:     result.InitialScore,
		RerankedScore:    result.RerankedScore,
		CreatedAt:        time.Now(),
	}

	uc.Store.Append(lead)

	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:        lead.ID,
			Email:         lead.Email,
			Phone:         lead.Phone,
			InitialScore:  lead.InitialScore,
			RerankedScore: lead.RerankedScore,
			ScoreTag:      entity.ScoreTag(lead.RerankedScore),
			CapturedAt:    lead.CreatedAt,
		}
		// Publish failures are logged and the capture stands.
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("⚠️ lead %s captured but alert publish failed: %v", lead.ID, err)
		}
	}

	return &lead, nil
}
