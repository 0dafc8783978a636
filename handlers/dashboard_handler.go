package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/mahjong-club/middleware"
	"github.com/Dosada05/mahjong-club/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	identity         *middleware.Identity
}

func NewDashboardHandler(dashboardService services.DashboardService, identity *middleware.Identity) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		identity:         identity,
	}
}

// Get возвращает дашборд текущего игрока: счётчики и сессии с деталями.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, err := middleware.GetPlayerIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(r.Context(), playerID)
	if err != nil {
		// Идентификатор есть, игрока нет: сбрасываем куку, чтобы клиент
		// вернулся на вход, вместо бесконечной 404.
		if errors.Is(err, services.ErrPlayerNotFound) {
			http.SetCookie(w, h.identity.ClearCookie())
			unauthorizedResponse(w, r, "player no longer exists, identity cleared")
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, dashboard, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
