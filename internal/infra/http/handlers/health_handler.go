package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type HealthHandler struct {
	ScoringURL string
	RabbitMQ   *amqp091.Connection
	StartTime  time.Time
	http       *http.Client
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(scoringURL string, rabbitMQ *amqp091.Connection) *HealthHandler {
	return &HealthHandler{
		ScoringURL: scoringURL,
		RabbitMQ:   rabbitMQ,
		StartTime:  time.Now(),
		http:       &http.Client{Timeout: 2 * time.Second},
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check scoring service
	if h.ScoringURL != "" {
		if err := h.pingScoring(); err != nil {
			deps["scoring"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["scoring"] = "healthy"
		}
	} else {
		deps["scoring"] = "not configured"
	}

	// Check RabbitMQ
	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	// Check mail
	if os.Getenv("MAIL_HOST") != "" {
		deps["mail"] = "configured"
	} else {
		deps["mail"] = "not configured"
	}

	// Determine overall status
	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}

func (h *HealthHandler) pingScoring() error {
	resp, err := h.http.Get(h.ScoringURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
