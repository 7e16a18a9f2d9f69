package handlers

import (
	"fmt"
	"net/http"

	"github.com/avirani/leadscore/internal/infra/http/middleware"
	"github.com/avirani/leadscore/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportLeadsUseCase
	Notice   *Notice
}

func NewExportHandler(exportUC *usecase.ExportLeadsUseCase, notice *Notice) *ExportHandler {
	return &ExportHandler{
		ExportUC: exportUC,
		Notice:   notice,
	}
}

// Handle serves GET /leads/export. An empty table produces no download at
// all, just a 204, and no notice.
func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.ExportUC.Execute()
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok && domainErr.Code == "NO_LEADS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordCSVExport()
	if h.Notice != nil {
		h.Notice.Show("Leads exported successfully!")
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", usecase.ExportFilename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
