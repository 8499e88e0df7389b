package transport

import (
	"net/http"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/middleware"
	"catalog-orders/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardHandler serves aggregated order metrics
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Metrics)
	r.Get("/dashboard/", h.Metrics)
}

// Metrics computes the dashboard. Aggregation errors are reported verbatim.
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.Metrics(r.Context())
	if err != nil {
		h.logger.Error("Dashboard aggregation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if metrics.OrdersLast7Days == nil {
		metrics.OrdersLast7Days = []domain.DailyOrderCount{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, metrics)
}
