package http

import (
	"net/http"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/dashboard"
	"github.com/pkl-smk/pkl-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AdminStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// AdminStats implements DashboardHandler.
func (h *dashboardHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.AdminStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
