package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/avirani/leadscore/internal/entity"
)

// LeadForm owns the in-progress draft. Fields arrive one at a time as
// strings and are parsed into the draft; nothing is validated across fields
// until Submit. The mutex is held for the whole of Submit, so a second
// submission blocks until the first one resolves.
type LeadForm struct {
	mu      sync.Mutex
	draft   CaptureLeadInput
	capture *CaptureLeadUseCase
}

func NewLeadForm(capture *CaptureLeadUseCase) *LeadForm {
	return &LeadForm{capture: capture}
}

// UpdateField replaces a single draft field. Unknown field names and
// unparseable numeric values are rejected; the rest of the draft is
// untouched either way.
func (f *LeadForm) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "phone":
		f.draft.Phone = value
	case "email":
		f.draft.Email = value
	case "creditScore":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &DomainError{Code: "INVALID_FIELD", Message: "creditScore must be a whole number"}
		}
		f.draft.CreditScore = &n
	case "ageGroup":
		f.draft.AgeGroup = value
	case "maritalStatus":
		f.draft.MaritalStatus = value
	case "annualIncome":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &DomainError{Code: "INVALID_FIELD", Message: "annualIncome must be a number"}
		}
		f.draft.AnnualIncome = &v
	case "netWorth":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &DomainError{Code: "INVALID_FIELD", Message: "netWorth must be a number"}
		}
		f.draft.NetWorth = &v
	case "employmentStatus":
		f.draft.EmploymentStatus = value
	case "comments":
		f.draft.Comments = value
	case "consent":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &DomainError{Code: "INVALID_FIELD", Message: "consent must be true or false"}
		}
		f.draft.Consent = b
	default:
		return &DomainError{Code: "UNKNOWN_FIELD", Message: fmt.Sprintf("no form field named %q", name)}
	}

	return nil
}

// Draft returns a copy of the current draft.
func (f *LeadForm) Draft() CaptureLeadInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Reset clears the draft back to its initial empty state.
func (f *LeadForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = CaptureLeadInput{}
}

// Submit commits the current draft through the capture pipeline. On success
// the draft resets; on any failure it is left exactly as it was, so the
// caller can fix a field and resubmit.
func (f *LeadForm) Submit(ctx context.Context) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lead, err := f.capture.Execute(ctx, f.draft)
	if err != nil {
		return nil, err
	}

	f.draft = CaptureLeadInput{}
	return lead, nil
}
