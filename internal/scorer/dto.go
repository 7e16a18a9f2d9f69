package scorer

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^\+91-\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// LeadRequest is the POST /score payload. Required fields are pointers so a
// missing field can be told apart from a zero value; annualIncome, netWorth
// and employmentStatus are optional with defaults.
type LeadRequest struct {
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	CreditScore      *int    `json:"creditScore"`
	AgeGroup         *string `json:"ageGroup"`
	MaritalStatus    *string `json:"maritalStatus"`
	Comments         *string `json:"comments"`
	Consent          *bool   `json:"consent"`
	AnnualIncome     float64 `json:"annualIncome"`
	NetWorth         float64 `json:"netWorth"`
	EmploymentStatus string  `json:"employmentStatus"`
}

func (lr *LeadRequest) validate() []string {
	var problems []string

	if lr.Phone == nil {
		problems = append(problems, "phone is required")
	} else if !phonePattern.MatchString(*lr.Phone) {
		problems = append(problems, "Phone number must match +91-xxxxxxxxxx format")
	}

	if lr.Email == nil {
		problems = append(problems, "email is required")
	} else if !emailPattern.MatchString(*lr.Email) {
		problems = append(problems, "email must be a valid email address")
	}

	if lr.CreditScore == nil {
		problems = append(problems, "creditScore is required")
	} else if *lr.CreditScore < 300 || *lr.CreditScore > 850 {
		problems = append(problems, "Credit score must be between 300 and 850")
	}

	if lr.AgeGroup == nil {
		problems = append(problems, "ageGroup is required")
	}

	if lr.MaritalStatus == nil {
		problems = append(problems, "maritalStatus is required")
	}

	if lr.Comments == nil {
		problems = append(problems, "comments is required")
	}

	if lr.Consent == nil {
		problems = append(problems, "consent is required")
	} else if !*lr.Consent {
		problems = append(problems, "Consent is required")
	}

	return problems
}

// ScoreResponse is the POST /score success body.
type ScoreResponse struct {
	InitialScore  int    `json:"initialScore"`
	RerankedScore int    `json:"rerankedScore"`
	IntentClass   string `json:"intentClass"`
	Message       string `json:"message"`
}

// scoredLead is a scored submission as kept in the in-memory log and
// returned by GET /leads: the lead fields plus the scoring result.
type scoredLead struct {
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	CreditScore      int     `json:"creditScore"`
	AgeGroup         string  `json:"ageGroup"`
	MaritalStatus    string  `json:"maritalStatus"`
	Comments         string  `json:"comments"`
	Consent          bool    `json:"consent"`
	AnnualIncome     float64 `json:"annualIncome"`
	NetWorth         float64 `json:"netWorth"`
	EmploymentStatus string  `json:"employmentStatus"`
	ScoreResponse
}
