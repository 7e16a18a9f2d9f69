package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avirani/leadscore/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses: domain
// errors are the caller's fault (400), a scoring outage is an upstream
// failure (502).
func writeUseCaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		body := map[string]interface{}{
			"error":   domainErr.Code,
			"message": domainErr.Message,
		}
		if len(domainErr.Details) > 0 {
			body["details"] = domainErr.Details
		}
		writeJSON(w, http.StatusBadRequest, body)
		return
	}

	if techErr, ok := err.(*usecase.TechnicalError); ok {
		if techErr.Code == "SCORING_UNAVAILABLE" {
			writeErrorResponse(w, http.StatusBadGateway, techErr.Code, techErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Code, techErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
