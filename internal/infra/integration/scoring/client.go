package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external lead scoring service. It issues exactly one
// request per submission; failures surface to the caller, never a retry.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Score posts the draft to the scorer and returns both scores.
func (c *Client) Score(ctx context.Context, input ScoreInput) (*ScoreResult, error) {
	url := fmt.Sprintf("%s/score", c.baseURL)

	payload := scoreRequest{
		Phone:            input.Phone,
		Email:            input.Email,
		CreditScore:      input.CreditScore,
		AgeGroup:         input.AgeGroup,
		MaritalStatus:    input.MaritalStatus,
		AnnualIncome:     input.AnnualIncome,
		NetWorth:         input.NetWorth,
		EmploymentStatus: input.EmploymentStatus,
		Comments:         input.Comments,
		Consent:          input.Consent,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ SCORING SERVICE ERROR (status %d): %s\n", resp.StatusCode, string(body))
		return nil, fmt.Errorf("scoring service rejected the lead (status %d)", resp.StatusCode)
	}

	var response scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode score response: %w", err)
	}

	return &ScoreResult{
		InitialScore:  response.InitialScore,
		RerankedScore: response.RerankedScore,
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LeadScore/1.0")
}
