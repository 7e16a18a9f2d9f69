package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avirani/leadscore/internal/usecase"
)

// FormHandler exposes the draft form: one field at a time in, one commit
// out. There is a single form per process, matching a single capture page.
type FormHandler struct {
	Form   *usecase.LeadForm
	Notice *Notice
}

func NewFormHandler(form *usecase.LeadForm, notice *Notice) *FormHandler {
	return &FormHandler{
		Form:   form,
		Notice: notice,
	}
}

type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateField handles POST /form/fields.
func (h *FormHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	if req.Field == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "field is required")
		return
	}

	if err := h.Form.UpdateField(req.Field, req.Value); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetDraft handles GET /form.
func (h *FormHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"draft": h.Form.Draft(),
	})
}

// Reset handles POST /form/reset.
func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Form.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Submit handles POST /form/submit: commits the draft through the capture
// pipeline. On success the draft is already reset and the transient notice
// starts its dismiss clock.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Form.Submit(r.Context())
	recordCaptureOutcome(err)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if h.Notice != nil {
		h.Notice.Show("Lead captured successfully!")
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"lead":    lead,
		"message": "Lead captured successfully!",
	})
}
