package scorer

import "strings"

// Features are the six lead attributes the intent model looks at.
type Features struct {
	MaritalStatus    string
	EmploymentStatus string
	AgeGroup         string
	CreditScore      int
	AnnualIncome     float64
	NetWorth         float64
}

// Category weights. Unknown categories contribute zero weight.
var (
	maritalWeights = map[string]float64{
		"Single":            0.6,
		"Married":           0.8,
		"Married with Kids": 1.0,
	}

	employmentWeights = map[string]float64{
		"Unemployed":    0.2,
		"Student":       0.4,
		"Self-employed": 0.8,
		"Employed":      1.0,
	}

	ageWeights = map[string]float64{
		"18-25": 0.6,
		"26-35": 1.0,
		"36-50": 0.9,
		"51+":   0.5,
	}
)

var intentScores = map[string]int{
	"High":   90,
	"Medium": 50,
	"Low":    20,
}

// CleanCategory normalizes a categorical value before lookup: en and em
// dashes become plain hyphens and surrounding whitespace is dropped.
func CleanCategory(value string) string {
	cleaned := strings.ReplaceAll(value, "–", "-")
	cleaned = strings.ReplaceAll(cleaned, "—", "-")
	return strings.TrimSpace(cleaned)
}

// PredictIntent bins a weighted composite of the lead features into one of
// the three intent classes. Credit score dominates, income and wealth carry
// the middle, and the categorical weights nudge the rest.
func PredictIntent(f Features) string {
	credit := float64(f.CreditScore-300) / 550.0
	income := normalize(f.AnnualIncome, 200000)
	wealth := normalize(f.NetWorth, 1000000)
	employment := employmentWeights[CleanCategory(f.EmploymentStatus)]
	age := ageWeights[CleanCategory(f.AgeGroup)]
	marital := maritalWeights[CleanCategory(f.MaritalStatus)]

	composite := 0.35*credit + 0.25*income + 0.15*wealth + 0.15*employment + 0.05*age + 0.05*marital

	switch {
	case composite >= 0.60:
		return "High"
	case composite >= 0.35:
		return "Medium"
	default:
		return "Low"
	}
}

// ScoreForLabel maps an intent class to its base score. Unknown labels map
// to zero.
func ScoreForLabel(label string) int {
	return intentScores[label]
}

// RerankFromComment nudges the base score using comment keywords. Branches
// are checked in order and only the first match applies, so a comment like
// "not interested" lands in the positive branch through its "interested"
// substring. The result is clamped to [0, 100].
func RerankFromComment(score int, comment string) int {
	comment = strings.ToLower(comment)

	if containsAny(comment, "urgent", "asap", "interested") {
		score += 10
	} else if containsAny(comment, "not sure", "maybe", "later") {
		score -= 10
	} else if containsAny(comment, "not interested", "spam", "unsubscribe") {
		score -= 20
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func containsAny(s string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func normalize(v, ceiling float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= ceiling {
		return 1
	}
	return v / ceiling
}
