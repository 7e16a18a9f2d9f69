package usecase

// CaptureLeadInput is the submission payload for a single lead. Numeric
// fields are pointers so that legitimate zero values (an annual income of 0)
// still satisfy the required tag.
type CaptureLeadInput struct {
	Phone            string   `json:"phone" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	CreditScore      *int     `json:"creditScore" validate:"required,gte=300,lte=850"`
	AgeGroup         string   `json:"ageGroup" validate:"required,oneof=18-25 26-35 36-50 51+"`
	MaritalStatus    string   `json:"maritalStatus" validate:"required"`
	AnnualIncome     *float64 `json:"annualIncome" validate:"required"`
	NetWorth         *float64 `json:"netWorth" validate:"required"`
	EmploymentStatus string   `json:"employmentStatus" validate:"required"`
	Comments         string   `json:"comments"`
	Consent          bool     `json:"consent"`
}
