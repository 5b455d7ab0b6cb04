package adaptor

import (
	"net/http"
	"time"

	"garage-booking/internal/usecase"
	"garage-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// RevenueSummary handles GET /api/dashboard/revenue (protected)
// Query params from/to (YYYY-MM-DD); defaults to the last 30 days.
func (h *DashboardHandler) RevenueSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	now := time.Now()
	to := utils.ParseDate(query.Get("to"), now)
	from := utils.ParseDate(query.Get("from"), now.AddDate(0, 0, -30))

	summary, err := h.service.RevenueSummary(r.Context(), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "revenue summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
