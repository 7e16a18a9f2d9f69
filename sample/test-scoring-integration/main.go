package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/avirani/leadscore/internal/infra/integration/scoring"
)

// Manual smoke test for the scoring client. Start the scorer first:
//
//	go run ./cmd/scorer
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found, using system environment variables")
	}

	baseURL := os.Getenv("SCORING_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	client := scoring.NewClient(baseURL)

	input := scoring.ScoreInput{
		Phone:            "+91-9876543210",
		Email:            "priya.smoke@example.com",
		CreditScore:      820,
		AgeGroup:         "26-35",
		MaritalStatus:    "Married with Kids",
		AnnualIncome:     150000,
		NetWorth:         500000,
		EmploymentStatus: "Employed",
		Comments:         "urgent, please call back asap",
		Consent:          true,
	}

	fmt.Println("🔄 Scoring a sample lead...")
	fmt.Printf("📋 Payload:\n")
	fmt.Printf("   Phone: %s\n", input.Phone)
	fmt.Printf("   Email: %s\n", input.Email)
	fmt.Printf("   Credit score: %d\n", input.CreditScore)
	fmt.Printf("   Income: %.2f\n", input.AnnualIncome)
	fmt.Printf("   Comments: %s\n\n", input.Comments)

	result, err := client.Score(context.Background(), input)
	if err != nil {
		log.Fatalf("Scoring failed: %v", err)
	}

	fmt.Println("Lead scored!")
	fmt.Printf(" Initial score:  %s\n", formatScore(result.InitialScore))
	fmt.Printf(" Reranked score: %s\n", formatScore(result.RerankedScore))
}

func formatScore(s *float64) string {
	if s == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *s)
}
