package report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/pkg/analysis"
	"github.com/schichtlog/schichtlog/pkg/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ExportReport handles GET /api/analysis/report. It accepts the same query
// parameters as the analysis endpoint and responds with a PDF attachment.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	filename, content, err := h.service.Generate(r.Context(), analysis.QueryFromRequest(r))
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Infof("rendered report %s (%d bytes)", filename, len(content))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	if _, err := w.Write(content); err != nil {
		log.Errorf("failed to write report response: %v", err)
	}
}
