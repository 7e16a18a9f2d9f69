package scorer

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
)

const scoredMessage = "✅ Lead scored successfully!"

// Handler serves the scoring endpoints and keeps an in-memory log of every
// lead it has scored. The log lives and dies with the process.
type Handler struct {
	mu    sync.Mutex
	leads []scoredLead
}

func NewHandler() *Handler {
	return &Handler{}
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Lead Scoring API is running!",
		"status":  "healthy",
	})
}

// ScoreLead handles POST /score.
func (h *Handler) ScoreLead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Validation error: invalid JSON body")
		return
	}

	if problems := req.validate(); len(problems) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "Validation error: "+strings.Join(problems, "; "))
		return
	}

	if req.EmploymentStatus == "" {
		req.EmploymentStatus = "Unemployed"
	}

	log.Printf("📥 Received lead data for: %s", *req.Email)

	label := PredictIntent(Features{
		MaritalStatus:    *req.MaritalStatus,
		EmploymentStatus: req.EmploymentStatus,
		AgeGroup:         *req.AgeGroup,
		CreditScore:      *req.CreditScore,
		AnnualIncome:     req.AnnualIncome,
		NetWorth:         req.NetWorth,
	})

	initialScore := ScoreForLabel(label)
	rerankedScore := RerankFromComment(initialScore, *req.Comments)

	result := ScoreResponse{
		InitialScore:  initialScore,
		RerankedScore: rerankedScore,
		IntentClass:   label,
		Message:       scoredMessage,
	}

	record := scoredLead{
		Phone:            *req.Phone,
		Email:            *req.Email,
		CreditScore:      *req.CreditScore,
		AgeGroup:         *req.AgeGroup,
		MaritalStatus:    *req.MaritalStatus,
		Comments:         *req.Comments,
		Consent:          *req.Consent,
		AnnualIncome:     req.AnnualIncome,
		NetWorth:         req.NetWorth,
		EmploymentStatus: req.EmploymentStatus,
		ScoreResponse:    result,
	}

	h.mu.Lock()
	h.leads = append(h.leads, record)
	h.mu.Unlock()

	log.Printf("✅ Lead %s scored successfully: %d", *req.Email, rerankedScore)
	writeJSON(w, http.StatusOK, result)
}

// GetLeads handles GET /leads.
func (h *Handler) GetLeads(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	leads := make([]scoredLead, len(h.leads))
	copy(leads, h.leads)
	h.mu.Unlock()

	log.Printf("📋 Retrieving %d leads", len(leads))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
		"count": len(leads),
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	count := len(h.leads)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"models_loaded": true,
		"leads_count":   count,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
