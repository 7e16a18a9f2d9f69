package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleInput() ScoreInput {
	return ScoreInput{
		Phone:            "+91-9876543210",
		Email:            "lead@example.com",
		CreditScore:      700,
		AgeGroup:         "18-25",
		MaritalStatus:    "Single",
		AnnualIncome:     50000,
		NetWorth:         100000,
		EmploymentStatus: "Employed",
		Comments:         "urgent",
		Consent:          true,
	}
}

func TestScoreSendsDraftFields(t *testing.T) {
	var received map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/score", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"initialScore": 90, "rerankedScore": 100}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Score(context.Background(), sampleInput())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 90.0, *result.InitialScore)
	assert.Equal(t, 100.0, *result.RerankedScore)

	assert.Equal(t, "+91-9876543210", received["phone"])
	assert.Equal(t, "lead@example.com", received["email"])
	assert.Equal(t, 700.0, received["creditScore"])
	assert.Equal(t, "18-25", received["ageGroup"])
	assert.Equal(t, "Single", received["maritalStatus"])
	assert.Equal(t, 50000.0, received["annualIncome"])
	assert.Equal(t, 100000.0, received["netWorth"])
	assert.Equal(t, "Employed", received["employmentStatus"])
	assert.Equal(t, "urgent", received["comments"])
	assert.Equal(t, true, received["consent"])
}

func TestScoreNullRerankedScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"initialScore": 50, "rerankedScore": null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Score(context.Background(), sampleInput())

	assert.NoError(t, err)
	assert.Equal(t, 50.0, *result.InitialScore)
	assert.Nil(t, result.RerankedScore)
}

func TestScoreRejectedByService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "Credit score must be between 300 and 850"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Score(context.Background(), sampleInput())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "422")
}

func TestScoreServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	result, err := client.Score(context.Background(), sampleInput())

	assert.Error(t, err)
	assert.Nil(t, result)
}
