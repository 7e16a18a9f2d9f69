package usecase

import (
	"context"

	"github.com/avirani/leadscore/internal/entity"
	"github.com/avirani/leadscore/internal/infra/integration/scoring"
	"github.com/avirani/leadscore/internal/infra/queue"
)

// ScoringGateway scores a submitted lead against the external scoring
// service. One request per submission, no retry: any failure is surfaced to
// the caller and the submission does not go through.
type ScoringGateway interface {
	Score(ctx context.Context, input scoring.ScoreInput) (*scoring.ScoreResult, error)
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

// CaptureLeadUseCase validates a draft, scores it and appends the finalized
// record to the store. Queue is optional; when nil, captured leads simply
// skip the alert pipeline.
type CaptureLeadUseCase struct {
	Store   entity.LeadStoreInterface
	Gateway ScoringGateway
	Queue   QueueProducerInterface
}

func NewCaptureLeadUseCase(store entity.LeadStoreInterface, gateway ScoringGateway, producer QueueProducerInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Store:   store,
		Gateway: gateway,
		Queue:   producer,
	}
}

// ExportLeadsUseCase renders the captured leads as a CSV document.
type ExportLeadsUseCase struct {
	Store entity.LeadStoreInterface
}

func NewExportLeadsUseCase(store entity.LeadStoreInterface) *ExportLeadsUseCase {
	return &ExportLeadsUseCase{Store: store}
}
