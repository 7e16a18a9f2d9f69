package usecase

// DomainError represents business rule violations: invalid field values,
// missing consent, empty exports. Handlers map these to 4xx responses.
type DomainError struct {
	Code    string
	Message string
	// Details carries the per-field breakdown for VALIDATION_ERROR codes.
	Details []ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

// TechnicalError represents infrastructure failures: scoring service down,
// broker unreachable. Handlers map these to 5xx responses.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
