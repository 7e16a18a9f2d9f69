package usecase

import (
	"strconv"
	"strings"

	"github.com/avirani/leadscore/internal/entity"
)

// ExportFilename is the download name handed to the client.
const ExportFilename = "leads_export.csv"

const csvHeader = "Phone,Email,Credit Score,Age Group,Marital Status,Comments,Consent,Initial Score,Reranked Score"

// Execute renders every captured lead as one CSV row, in capture order.
// With no leads there is nothing to download and a NO_LEADS error is
// returned instead of an empty document.
func (uc *ExportLeadsUseCase) Execute() ([]byte, error) {
	leads := uc.Store.List()
	if len(leads) == 0 {
		return nil, &DomainError{
			Code:    "NO_LEADS",
			Message: "no leads to export",
		}
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	for _, lead := range leads {
		b.WriteByte('\n')
		b.WriteString(csvRow(lead))
	}

	return []byte(b.String()), nil
}

// csvRow writes the nine export columns. Comments are always wrapped in
// double quotes; embedded quotes are not escaped, so this is not a
// general-purpose CSV writer.
func csvRow(lead entity.Lead) string {
	return strings.Join([]string{
		lead.Phone,
		lead.Email,
		strconv.Itoa(lead.CreditScore),
		lead.AgeGroup,
		lead.MaritalStatus,
		`"` + lead.Comments + `"`,
		yesNo(lead.Consent),
		csvScore(lead.InitialScore),
		csvScore(lead.RerankedScore),
	}, ",")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func csvScore(score *float64) string {
	if score == nil {
		return entity.ScoreTagNA
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
