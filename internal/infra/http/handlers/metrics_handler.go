package handlers

import (
	"net/http"

	"github.com/xavierca1/leadqual/internal/usecase"
)

type MetricsHandler struct {
	metricsUC *usecase.GetDashboardMetricsUseCase
}

func NewMetricsHandler(metricsUC *usecase.GetDashboardMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{metricsUC: metricsUC}
}

func (h *MetricsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metricsUC.Execute(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]*usecase.DashboardMetrics{"metrics": metrics})
}
