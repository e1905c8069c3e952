package handler

import (
	"net/http"

	"github.com/veritable/veritable-go/internal/middleware"
	"github.com/veritable/veritable-go/internal/service"
)

// StatsHandler handles the admin dashboard counters.
type StatsHandler struct {
	service *service.StatsService
	dev     bool
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService, dev bool) *StatsHandler {
	return &StatsHandler{service: svc, dev: dev}
}

// HandleStats handles GET /admin/stats requests. Any authenticated principal
// may read the counters.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Stats(r.Context())
	if err != nil {
		internalError(w, err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
