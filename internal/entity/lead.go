package entity

import (
	"time"
)

// Allowed values for the three enum fields of a lead submission.
var (
	AgeGroups          = []string{"18-25", "26-35", "36-50", "51+"}
	MaritalStatuses    = []string{"Single", "Married", "Married with Kids"}
	EmploymentStatuses = []string{"Employed", "Unemployed", "Student", "Self-employed"}
)

// Lead is a captured submission. Records are immutable once built: a lead
// only exists after consent was given and the scoring call answered. JSON
// names are camelCase, matching the scoring service wire format.
type Lead struct {
	ID               string    `json:"id"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	CreditScore      int       `json:"creditScore"`
	AgeGroup         string    `json:"ageGroup"`
	MaritalStatus    string    `json:"maritalStatus"`
	AnnualIncome     float64   `json:"annualIncome"`
	NetWorth         float64   `json:"netWorth"`
	EmploymentStatus string    `json:"employmentStatus"`
	Comments         string    `json:"comments"`
	Consent          bool      `json:"consent"`
	InitialScore     *float64  `json:"initialScore"`
	RerankedScore    *float64  `json:"rerankedScore"`
	CreatedAt        time.Time `json:"createdAt"`
}

// LeadStoreInterface is the process-wide sequence of captured leads.
// Append-only: no update, no delete.
type LeadStoreInterface interface {
	Append(lead Lead)
	List() []Lead
	Len() int
}

// Score tags shown in the leads table.
const (
	ScoreTagHigh = "High"
	ScoreTagMid  = "Mid"
	ScoreTagLow  = "Low"
	ScoreTagNA   = "N/A"
)

// ScoreTag categorizes a score: High >= 70, Mid >= 40, Low below that,
// N/A when the scorer never assigned one. Total over nil and any number.
func ScoreTag(score *float64) string {
	if score == nil {
		return ScoreTagNA
	}
	switch {
	case *score >= 70:
		return ScoreTagHigh
	case *score >= 40:
		return ScoreTagMid
	default:
		return ScoreTagLow
	}
}
