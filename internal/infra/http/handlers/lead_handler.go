package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avirani/leadscore/internal/entity"
	"github.com/avirani/leadscore/internal/infra/http/middleware"
	"github.com/avirani/leadscore/internal/usecase"
)

type LeadHandler struct {
	CaptureUC   *usecase.CaptureLeadUseCase
	Store       entity.LeadStoreInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(captureUC *usecase.CaptureLeadUseCase, store entity.LeadStoreInterface) *LeadHandler {
	return &LeadHandler{
		CaptureUC:   captureUC,
		Store:       store,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// leadView decorates a lead with the score tags the table renders.
type leadView struct {
	entity.Lead
	InitialScoreTag  string `json:"initialScoreTag"`
	RerankedScoreTag string `json:"rerankedScoreTag"`
}

// Create handles POST /leads: a one-shot capture of a complete payload,
// bypassing the draft form.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, err := h.CaptureUC.Execute(r.Context(), input)
	recordCaptureOutcome(err)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

// List handles GET /leads.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads := h.Store.List()

	views := make([]leadView, 0, len(leads))
	for _, lead := range leads {
		views = append(views, leadView{
			Lead:             lead,
			InitialScoreTag:  entity.ScoreTag(lead.InitialScore),
			RerankedScoreTag: entity.ScoreTag(lead.RerankedScore),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads": views,
		"count": len(views),
	})
}

func recordCaptureOutcome(err error) {
	switch {
	case err == nil:
		middleware.RecordLeadCapture("success")
		middleware.RecordScoringRequest("success")
	case usecase.IsTechnicalError(err):
		middleware.RecordLeadCapture("scoring_unavailable")
		middleware.RecordScoringRequest("error")
		middleware.RecordIntegrationError("scoring")
	default:
		if domainErr, ok := err.(*usecase.DomainError); ok {
			middleware.RecordLeadCapture(strings.ToLower(domainErr.Code))
		}
	}
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
