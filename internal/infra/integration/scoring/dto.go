package scoring

// ScoreInput carries the submitted draft fields to the scoring service.
type ScoreInput struct {
	Phone            string
	Email            string
	CreditScore      int
	AgeGroup         string
	MaritalStatus    string
	AnnualIncome     float64
	NetWorth         float64
	EmploymentStatus string
	Comments         string
	Consent          bool
}

// ScoreResult is what the scorer hands back. Either field can be null when
// the service does not provide it.
type ScoreResult struct {
	InitialScore  *float64
	RerankedScore *float64
}

// scoreRequest is the wire payload for POST /score.
type scoreRequest struct {
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	CreditScore      int     `json:"creditScore"`
	AgeGroup         string  `json:"ageGroup"`
	MaritalStatus    string  `json:"maritalStatus"`
	AnnualIncome     float64 `json:"annualIncome"`
	NetWorth         float64 `json:"netWorth"`
	EmploymentStatus string  `json:"employmentStatus"`
	Comments         string  `json:"comments"`
	Consent          bool    `json:"consent"`
}

type scoreResponse struct {
	InitialScore  *float64 `json:"initialScore"`
	RerankedScore *float64 `json:"rerankedScore"`
}
